package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/smd-system/ai-service/internal/domain"
	"github.com/smd-system/ai-service/internal/summarizer"
)

// modelMinInputChars is the minimum content length worth a model call;
// shorter inputs go straight to the extractive fallback.
const modelMinInputChars = 100

// emptySummaryText is stored when the syllabus has no summarizable
// content at all.
const emptySummaryText = "No content available for summarization"

// SummaryResult is the payload of a completed summary task.
type SummaryResult struct {
	Summary          string   `json:"summary"`
	KeyPoints        []string `json:"key_points"`
	WordCount        int      `json:"word_count"`
	OriginalLength   int      `json:"original_length,omitempty"`
	CompressionRatio float64  `json:"compression_ratio,omitempty"`
}

// SummaryService generates syllabus summaries, preferring the
// configured model and falling back to extractive selection.
type SummaryService struct {
	model    summarizer.Summarizer // nil when no model is configured
	fallback summarizer.Summarizer
	tagger   summarizer.Tagger // nil when no Vietnamese tagger is configured
	logger   *slog.Logger
}

// NewSummaryService creates a SummaryService. model and tagger may be
// nil; fallback must not be.
func NewSummaryService(
	model summarizer.Summarizer,
	fallback summarizer.Summarizer,
	tagger summarizer.Tagger,
	logger *slog.Logger,
) *SummaryService {
	return &SummaryService{
		model:    model,
		fallback: fallback,
		tagger:   tagger,
		logger:   logger.With("component", "summary_service"),
	}
}

// Generate combines the labeled syllabus fields into one block of
// text, summarizes it within the given bounds, and extracts key points.
func (s *SummaryService) Generate(
	ctx context.Context,
	syllabus domain.Syllabus,
	bounds summarizer.Bounds,
) (*SummaryResult, error) {
	fullText := combineContent(syllabus)

	if strings.TrimSpace(fullText) == "" {
		return &SummaryResult{
			Summary:   emptySummaryText,
			KeyPoints: []string{},
			WordCount: 0,
		}, nil
	}

	var summary string
	var err error
	if s.model != nil && len(fullText) > modelMinInputChars {
		summary, err = s.model.Summarize(ctx, fullText, bounds)
		if err != nil {
			return nil, fmt.Errorf("summarization model failed: %w", err)
		}
	} else {
		summary, err = s.fallback.Summarize(ctx, fullText, bounds)
		if err != nil {
			return nil, fmt.Errorf("extractive summarization failed: %w", err)
		}
	}

	if s.tagger != nil && summarizer.ContainsVietnamese(fullText) {
		summary = summarizer.EnhanceVietnamese(ctx, s.tagger, summary, fullText)
	}

	summaryWords := len(strings.Fields(summary))
	originalWords := len(strings.Fields(fullText))
	ratio := 0.0
	if originalWords > 0 {
		ratio = float64(summaryWords) / float64(originalWords)
	}

	return &SummaryResult{
		Summary:          summary,
		KeyPoints:        extractKeyPoints(syllabus),
		WordCount:        summaryWords,
		OriginalLength:   originalWords,
		CompressionRatio: ratio,
	}, nil
}

// combineContent concatenates the summarizable fields with their
// labels, skipping empty ones.
func combineContent(syllabus domain.Syllabus) string {
	var parts []string
	if syllabus.Description != "" {
		parts = append(parts, "Course Description: "+syllabus.Description)
	}
	if syllabus.Objectives != "" {
		parts = append(parts, "Learning Objectives: "+syllabus.Objectives)
	}
	if syllabus.AssessmentMethods != "" {
		parts = append(parts, "Assessment: "+syllabus.AssessmentMethods)
	}
	if syllabus.Prerequisites != "" {
		parts = append(parts, "Prerequisites: "+syllabus.Prerequisites)
	}
	return strings.Join(parts, " ")
}

// extractKeyPoints builds the at-a-glance facts for the summary.
func extractKeyPoints(syllabus domain.Syllabus) []string {
	keyPoints := []string{}

	if syllabus.CourseCode != "" && syllabus.CourseName != "" {
		keyPoints = append(keyPoints,
			fmt.Sprintf("Course: %s - %s", syllabus.CourseCode, syllabus.CourseName))
	}
	if syllabus.Credits > 0 {
		keyPoints = append(keyPoints, fmt.Sprintf("Credits: %d", syllabus.Credits))
	}
	if syllabus.Semester != "" && syllabus.AcademicYear != "" {
		keyPoints = append(keyPoints,
			fmt.Sprintf("Offered: %s %s", syllabus.Semester, syllabus.AcademicYear))
	}
	if syllabus.Prerequisites != "" {
		prereq := syllabus.Prerequisites
		if runes := []rune(prereq); len(runes) > 100 {
			prereq = string(runes[:100]) + "..."
		}
		keyPoints = append(keyPoints, "Prerequisites: "+prereq)
	}

	return keyPoints
}
