// Package summarizer produces syllabus summaries. The Gemini client is
// the abstractive path; the extractive summarizer is the fallback used
// when no model is configured or the input is too short to be worth a
// model call.
package summarizer

import (
	"context"
	"errors"
)

// Common errors returned by summarizer implementations.
var (
	ErrEmptyText       = errors.New("text to summarize cannot be empty")
	ErrInvalidResponse = errors.New("invalid response from summarization model")
)

// Bounds carries the caller-supplied summary length limits, counted in
// words.
type Bounds struct {
	MaxLength int
	MinLength int
}

// DefaultBounds returns the length limits applied when the caller
// omits them.
func DefaultBounds() Bounds {
	return Bounds{MaxLength: 150, MinLength: 50}
}

// Summarizer produces a summary of the provided text within the given
// length bounds.
type Summarizer interface {
	Name() string
	Summarize(ctx context.Context, text string, bounds Bounds) (string, error)
}
