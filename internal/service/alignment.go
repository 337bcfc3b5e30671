package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/smd-system/ai-service/internal/domain"
	"github.com/smd-system/ai-service/internal/embedding"
)

// Mapping strength classifications.
const (
	StrengthStrong   = "strong"
	StrengthModerate = "moderate"
	StrengthWeak     = "weak"
	StrengthVeryWeak = "very_weak"
)

// topMappingsPerCLO bounds how many candidate PLOs are reported per CLO.
const topMappingsPerCLO = 3

// EmbedderFactory yields an embedder for a single analysis run. Local
// embedders are stateful per corpus, so each task gets a fresh one;
// remote embedders are stateless and the factory may return a shared
// client.
type EmbedderFactory func() embedding.Embedder

// OutcomeMapping pairs one CLO with one candidate PLO.
type OutcomeMapping struct {
	CLOID           int     `json:"clo_id"`
	CLOCode         string  `json:"clo_code"`
	PLOID           int     `json:"plo_id"`
	PLOCode         string  `json:"plo_code"`
	SimilarityScore float64 `json:"similarity_score"`
	MappingStrength string  `json:"mapping_strength"`
	Recommended     bool    `json:"recommended"`
}

// Compliance summarizes alignment quality across the whole submission.
type Compliance struct {
	OverallScore    float64  `json:"overall_score"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// AlignmentStatistics are the aggregate counters of one analysis.
type AlignmentStatistics struct {
	TotalCLOs           int     `json:"total_clos"`
	TotalPLOs           int     `json:"total_plos"`
	StrongMappings      int     `json:"strong_mappings"`
	RecommendedMappings int     `json:"recommended_mappings"`
	CoveragePercentage  float64 `json:"coverage_percentage"`
}

// AlignmentResult is the payload of a completed CLO-PLO check task.
type AlignmentResult struct {
	Mappings   []OutcomeMapping    `json:"mappings"`
	Compliance Compliance          `json:"compliance"`
	Statistics AlignmentStatistics `json:"statistics"`
}

// AlignmentService computes CLO-PLO alignment via embedding similarity.
type AlignmentService struct {
	newEmbedder EmbedderFactory
	logger      *slog.Logger
}

// NewAlignmentService creates an AlignmentService.
func NewAlignmentService(newEmbedder EmbedderFactory, logger *slog.Logger) *AlignmentService {
	return &AlignmentService{
		newEmbedder: newEmbedder,
		logger:      logger.With("component", "alignment_service"),
	}
}

// MappingStrength classifies a similarity score. It is a pure function
// of the score: >=0.8 strong, >=0.6 moderate, >=0.4 weak, below that
// very_weak. Strong and moderate mappings are recommended.
func MappingStrength(score float64) (strength string, recommended bool) {
	switch {
	case score >= 0.8:
		return StrengthStrong, true
	case score >= 0.6:
		return StrengthModerate, true
	case score >= 0.4:
		return StrengthWeak, false
	default:
		return StrengthVeryWeak, false
	}
}

// Analyze embeds every outcome, scores each CLO against every PLO, and
// reports the top candidate mappings together with a compliance
// assessment.
func (s *AlignmentService) Analyze(ctx context.Context, clos []domain.CLO, plos []domain.PLO) (*AlignmentResult, error) {
	var mappings []OutcomeMapping

	if len(clos) > 0 && len(plos) > 0 {
		cloVecs, ploVecs, err := s.embedOutcomes(ctx, clos, plos)
		if err != nil {
			return nil, err
		}

		for i, clo := range clos {
			similarities := make([]float64, len(plos))
			for j := range plos {
				similarities[j] = embedding.Cosine(cloVecs[i], ploVecs[j])
			}

			for _, j := range topIndices(similarities, topMappingsPerCLO) {
				score := similarities[j]
				strength, recommended := MappingStrength(score)
				mappings = append(mappings, OutcomeMapping{
					CLOID:           clo.ID,
					CLOCode:         clo.Code,
					PLOID:           plos[j].ID,
					PLOCode:         plos[j].Code,
					SimilarityScore: score,
					MappingStrength: strength,
					Recommended:     recommended,
				})
			}
		}
	}

	compliance := analyzeCompliance(clos, plos, mappings)

	strong := 0
	recommended := 0
	for _, m := range mappings {
		if m.MappingStrength == StrengthStrong {
			strong++
		}
		if m.Recommended {
			recommended++
		}
	}

	return &AlignmentResult{
		Mappings:   mappings,
		Compliance: compliance,
		Statistics: AlignmentStatistics{
			TotalCLOs:           len(clos),
			TotalPLOs:           len(plos),
			StrongMappings:      strong,
			RecommendedMappings: recommended,
			CoveragePercentage:  coveragePercentage(clos, mappings),
		},
	}, nil
}

// embedOutcomes prepares the embedder over all outcome texts and
// returns the CLO and PLO vectors.
func (s *AlignmentService) embedOutcomes(
	ctx context.Context,
	clos []domain.CLO,
	plos []domain.PLO,
) ([][]float64, [][]float64, error) {
	embedder := s.newEmbedder()

	corpus := make([]string, 0, len(clos)+len(plos))
	for _, clo := range clos {
		corpus = append(corpus, clo.EmbeddingText())
	}
	for _, plo := range plos {
		corpus = append(corpus, plo.EmbeddingText())
	}
	if err := embedder.Prepare(ctx, corpus); err != nil {
		return nil, nil, fmt.Errorf("failed to prepare embedder: %w", err)
	}

	cloVecs := make([][]float64, len(clos))
	for i, clo := range clos {
		vec, err := embedder.Embed(ctx, clo.EmbeddingText())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to embed CLO %s: %w", clo.Code, err)
		}
		cloVecs[i] = vec
	}
	ploVecs := make([][]float64, len(plos))
	for i, plo := range plos {
		vec, err := embedder.Embed(ctx, plo.EmbeddingText())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to embed PLO %s: %w", plo.Code, err)
		}
		ploVecs[i] = vec
	}
	return cloVecs, ploVecs, nil
}

// analyzeCompliance flags CLOs without a strong mapping and low PLO
// coverage, and derives the overall score as the average of the
// recommended-mapping ratio and the PLO coverage ratio.
func analyzeCompliance(clos []domain.CLO, plos []domain.PLO, mappings []OutcomeMapping) Compliance {
	compliance := Compliance{
		Issues:          []string{},
		Recommendations: []string{},
	}

	var unmapped []string
	for _, clo := range clos {
		hasStrong := false
		for _, m := range mappings {
			if m.CLOID == clo.ID && m.MappingStrength == StrengthStrong {
				hasStrong = true
				break
			}
		}
		if !hasStrong {
			unmapped = append(unmapped, clo.Code)
		}
	}
	if len(unmapped) > 0 {
		compliance.Issues = append(compliance.Issues,
			"CLOs without strong PLO mapping: "+strings.Join(unmapped, ", "))
		compliance.Recommendations = append(compliance.Recommendations,
			"Review and strengthen alignment for unmapped CLOs")
	}

	mappedPLOs := make(map[int]struct{})
	for _, m := range mappings {
		if m.Recommended {
			mappedPLOs[m.PLOID] = struct{}{}
		}
	}
	coverageRatio := 0.0
	if len(plos) > 0 {
		coverageRatio = float64(len(mappedPLOs)) / float64(len(plos))
	}
	if coverageRatio < 0.7 {
		compliance.Issues = append(compliance.Issues,
			fmt.Sprintf("Low PLO coverage: %.1f%%", coverageRatio*100))
		compliance.Recommendations = append(compliance.Recommendations,
			"Ensure broader PLO coverage in course design")
	}

	mappingScore := 0.0
	if len(clos) > 0 {
		recommended := 0
		for _, m := range mappings {
			if m.Recommended {
				recommended++
			}
		}
		mappingScore = float64(recommended) / float64(len(clos))
	}
	compliance.OverallScore = (mappingScore + coverageRatio) / 2

	return compliance
}

// coveragePercentage is the share of CLOs having at least one
// recommended mapping, in [0, 100]. Zero for an empty CLO list.
func coveragePercentage(clos []domain.CLO, mappings []OutcomeMapping) float64 {
	if len(clos) == 0 {
		return 0.0
	}
	mapped := make(map[int]struct{})
	for _, m := range mappings {
		if m.Recommended {
			mapped[m.CLOID] = struct{}{}
		}
	}
	return float64(len(mapped)) / float64(len(clos)) * 100
}

// topIndices returns the indices of the k highest values, descending.
func topIndices(values []float64, k int) []int {
	idxs := make([]int, len(values))
	for i := range idxs {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(a, b int) bool { return values[idxs[a]] > values[idxs[b]] })
	if k > len(idxs) {
		k = len(idxs)
	}
	return idxs[:k]
}
