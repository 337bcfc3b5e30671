// Package embedding converts outcome and syllabus text into numeric
// vectors for similarity scoring. The remote client targets an
// OpenAI-compatible embeddings endpoint; the TF-IDF embedder is the
// local fallback when no endpoint is configured.
package embedding

import (
	"context"
	"math"
)

// Embedder converts free text into a numeric vector representation.
// Implementations may require a preparation phase over the corpus.
type Embedder interface {
	Name() string
	Prepare(ctx context.Context, corpus []string) error
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Cosine returns the cosine similarity of two vectors in [-1, 1].
// A zero-norm vector yields 0.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	for _, v := range a {
		normA += v * v
	}
	for _, v := range b {
		normB += v * v
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
