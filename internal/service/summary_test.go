package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smd-system/ai-service/internal/domain"
	"github.com/smd-system/ai-service/internal/summarizer"
)

// fixedSummarizer returns a canned summary or a canned error.
type fixedSummarizer struct {
	name    string
	summary string
	err     error
	calls   int
}

func (f *fixedSummarizer) Name() string { return f.name }

func (f *fixedSummarizer) Summarize(_ context.Context, _ string, _ summarizer.Bounds) (string, error) {
	f.calls++
	return f.summary, f.err
}

func TestSummaryService_Generate(t *testing.T) {
	t.Parallel()

	longDescription := strings.Repeat("This course teaches systematic database design. ", 5)

	t.Run("empty syllabus returns placeholder", func(t *testing.T) {
		t.Parallel()

		svc := NewSummaryService(nil, summarizer.NewExtractive(), nil, testLogger())
		result, err := svc.Generate(context.Background(), domain.Syllabus{}, summarizer.DefaultBounds())
		require.NoError(t, err)

		assert.Equal(t, "No content available for summarization", result.Summary)
		assert.Empty(t, result.KeyPoints)
		assert.Zero(t, result.WordCount)
	})

	t.Run("model is used for long content", func(t *testing.T) {
		t.Parallel()

		model := &fixedSummarizer{name: "model", summary: "Model summary."}
		svc := NewSummaryService(model, summarizer.NewExtractive(), nil, testLogger())

		result, err := svc.Generate(context.Background(), domain.Syllabus{
			Description: longDescription,
		}, summarizer.DefaultBounds())
		require.NoError(t, err)

		assert.Equal(t, 1, model.calls)
		assert.Equal(t, "Model summary.", result.Summary)
	})

	t.Run("short content skips the model", func(t *testing.T) {
		t.Parallel()

		model := &fixedSummarizer{name: "model", summary: "Model summary."}
		svc := NewSummaryService(model, summarizer.NewExtractive(), nil, testLogger())

		result, err := svc.Generate(context.Background(), domain.Syllabus{
			Description: "Short text.",
		}, summarizer.DefaultBounds())
		require.NoError(t, err)

		assert.Zero(t, model.calls)
		assert.NotEmpty(t, result.Summary)
	})

	t.Run("model failure fails the task", func(t *testing.T) {
		t.Parallel()

		model := &fixedSummarizer{name: "model", err: errors.New("quota exceeded")}
		svc := NewSummaryService(model, summarizer.NewExtractive(), nil, testLogger())

		_, err := svc.Generate(context.Background(), domain.Syllabus{
			Description: longDescription,
		}, summarizer.DefaultBounds())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "summarization model failed")
	})

	t.Run("no model falls back to extractive", func(t *testing.T) {
		t.Parallel()

		svc := NewSummaryService(nil, summarizer.NewExtractive(), nil, testLogger())
		result, err := svc.Generate(context.Background(), domain.Syllabus{
			Description: longDescription,
		}, summarizer.DefaultBounds())
		require.NoError(t, err)

		assert.NotEmpty(t, result.Summary)
		assert.Greater(t, result.CompressionRatio, 0.0)
		assert.Equal(t, len(strings.Fields(result.Summary)), result.WordCount)
	})

	t.Run("key points cover the structured fields", func(t *testing.T) {
		t.Parallel()

		svc := NewSummaryService(nil, summarizer.NewExtractive(), nil, testLogger())
		result, err := svc.Generate(context.Background(), domain.Syllabus{
			CourseCode:    "CS305",
			CourseName:    "Database Systems",
			Description:   "Relational model, SQL and transactions.",
			Credits:       3,
			Semester:      "Fall",
			AcademicYear:  "2024",
			Prerequisites: "CS201 Data Structures",
		}, summarizer.DefaultBounds())
		require.NoError(t, err)

		assert.Contains(t, result.KeyPoints, "Course: CS305 - Database Systems")
		assert.Contains(t, result.KeyPoints, "Credits: 3")
		assert.Contains(t, result.KeyPoints, "Offered: Fall 2024")
		assert.Contains(t, result.KeyPoints, "Prerequisites: CS201 Data Structures")
	})

	t.Run("long prerequisites are truncated in key points", func(t *testing.T) {
		t.Parallel()

		svc := NewSummaryService(nil, summarizer.NewExtractive(), nil, testLogger())
		result, err := svc.Generate(context.Background(), domain.Syllabus{
			Description:   "Some description.",
			Prerequisites: strings.Repeat("x", 150),
		}, summarizer.DefaultBounds())
		require.NoError(t, err)

		var prereqPoint string
		for _, p := range result.KeyPoints {
			if strings.HasPrefix(p, "Prerequisites: ") {
				prereqPoint = p
			}
		}
		require.NotEmpty(t, prereqPoint)
		assert.True(t, strings.HasSuffix(prereqPoint, "..."))
		assert.Len(t, []rune(strings.TrimPrefix(prereqPoint, "Prerequisites: ")), 103)
	})

	t.Run("vietnamese content gains key terms", func(t *testing.T) {
		t.Parallel()

		tagger := &stubTagger{phrases: []string{"cơ sở dữ liệu"}}
		model := &fixedSummarizer{name: "model", summary: "Tóm tắt môn học."}
		svc := NewSummaryService(model, summarizer.NewExtractive(), tagger, testLogger())

		vietnamese := strings.Repeat("Môn học giới thiệu về quản trị và thiết kế hệ thống thông tin. ", 3)
		result, err := svc.Generate(context.Background(), domain.Syllabus{
			Description: vietnamese,
		}, summarizer.DefaultBounds())
		require.NoError(t, err)

		assert.Contains(t, result.Summary, "(cơ sở dữ liệu)")
	})
}

// stubTagger returns a fixed phrase list for summary enhancement tests.
type stubTagger struct {
	phrases []string
}

func (s *stubTagger) KeyPhrases(_ context.Context, _ string) ([]string, error) {
	return s.phrases, nil
}
