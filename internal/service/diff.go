package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/smd-system/ai-service/internal/domain"
	"github.com/smd-system/ai-service/internal/embedding"
)

// Change type classifications for a diffed field.
const (
	ChangeAdded    = "added"
	ChangeRemoved  = "removed"
	ChangeModified = "modified"
)

// semanticChangeThreshold is the similarity below which a modification
// is considered meaning-altering.
const semanticChangeThreshold = 0.8

// FieldChange describes one changed syllabus field.
type FieldChange struct {
	Field           string  `json:"field"`
	ChangeType      string  `json:"change_type"`
	OldValue        string  `json:"old_value"`
	NewValue        string  `json:"new_value"`
	SimilarityScore float64 `json:"similarity_score"`
	SemanticChange  bool    `json:"semantic_change"`
}

// DiffSummary aggregates a comparison.
type DiffSummary struct {
	TotalChanges    int      `json:"total_changes"`
	SemanticChanges int      `json:"semantic_changes"`
	FieldsChanged   []string `json:"fields_changed"`
}

// DiffResult is the payload of a completed semantic diff task.
type DiffResult struct {
	Results []FieldChange `json:"results"`
	Summary DiffSummary   `json:"summary"`
}

// DiffService compares two syllabus versions field by field.
type DiffService struct {
	newEmbedder EmbedderFactory
	logger      *slog.Logger
}

// NewDiffService creates a DiffService.
func NewDiffService(newEmbedder EmbedderFactory, logger *slog.Logger) *DiffService {
	return &DiffService{
		newEmbedder: newEmbedder,
		logger:      logger.With("component", "diff_service"),
	}
}

// Compare reports every field whose value changed between the two
// versions, with an embedding similarity score for modified fields.
func (s *DiffService) Compare(ctx context.Context, oldVersion, newVersion domain.Syllabus) (*DiffResult, error) {
	embedder := s.newEmbedder()
	prepared := false

	results := []FieldChange{}
	for _, field := range domain.DiffFields {
		oldValue := oldVersion.Field(field)
		newValue := newVersion.Field(field)
		if oldValue == newValue {
			continue
		}

		similarity := 0.0
		if oldValue != "" && newValue != "" {
			if !prepared {
				if err := s.prepareCorpus(ctx, embedder, oldVersion, newVersion); err != nil {
					return nil, err
				}
				prepared = true
			}
			score, err := s.similarity(ctx, embedder, oldValue, newValue)
			if err != nil {
				return nil, fmt.Errorf("failed to score field %s: %w", field, err)
			}
			similarity = score
		}

		changeType := ChangeModified
		if oldValue == "" && newValue != "" {
			changeType = ChangeAdded
		} else if oldValue != "" && newValue == "" {
			changeType = ChangeRemoved
		}

		results = append(results, FieldChange{
			Field:           field,
			ChangeType:      changeType,
			OldValue:        oldValue,
			NewValue:        newValue,
			SimilarityScore: similarity,
			SemanticChange:  similarity < semanticChangeThreshold,
		})
	}

	summary := DiffSummary{
		TotalChanges:  len(results),
		FieldsChanged: []string{},
	}
	for _, r := range results {
		if r.SemanticChange {
			summary.SemanticChanges++
		}
		summary.FieldsChanged = append(summary.FieldsChanged, r.Field)
	}

	return &DiffResult{Results: results, Summary: summary}, nil
}

// prepareCorpus feeds every changed field value into the embedder so
// local vectorizers see the full comparison vocabulary.
func (s *DiffService) prepareCorpus(
	ctx context.Context,
	embedder embedding.Embedder,
	oldVersion, newVersion domain.Syllabus,
) error {
	var corpus []string
	for _, field := range domain.DiffFields {
		if v := oldVersion.Field(field); v != "" {
			corpus = append(corpus, v)
		}
		if v := newVersion.Field(field); v != "" {
			corpus = append(corpus, v)
		}
	}
	if err := embedder.Prepare(ctx, corpus); err != nil {
		return fmt.Errorf("failed to prepare embedder: %w", err)
	}
	return nil
}

// similarity embeds both values and returns their cosine similarity.
func (s *DiffService) similarity(
	ctx context.Context,
	embedder embedding.Embedder,
	oldValue, newValue string,
) (float64, error) {
	oldVec, err := embedder.Embed(ctx, oldValue)
	if err != nil {
		return 0, err
	}
	newVec, err := embedder.Embed(ctx, newValue)
	if err != nil {
		return 0, err
	}
	return embedding.Cosine(oldVec, newVec), nil
}
