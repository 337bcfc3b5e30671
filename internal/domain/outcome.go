package domain

import (
	"errors"
	"fmt"
)

// Common validation errors for learning outcomes
var (
	ErrEmptyOutcomeCode        = errors.New("outcome code cannot be empty")
	ErrEmptyOutcomeDescription = errors.New("outcome description cannot be empty")
)

// CLO represents a course-level learning outcome submitted for
// alignment analysis against program-level outcomes.
type CLO struct {
	ID          int     `json:"id"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	BloomLevel  string  `json:"bloomLevel"`
	Weight      float64 `json:"weight"`
}

// PLO represents a program-level learning outcome.
type PLO struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Program     string `json:"program"`
	Category    string `json:"category"`
}

// Validate checks that the CLO carries enough text to be embedded.
func (c CLO) Validate() error {
	if c.Code == "" {
		return ErrEmptyOutcomeCode
	}
	if c.Description == "" {
		return ErrEmptyOutcomeDescription
	}
	return nil
}

// Validate checks that the PLO carries enough text to be embedded.
func (p PLO) Validate() error {
	if p.Code == "" {
		return ErrEmptyOutcomeCode
	}
	if p.Description == "" {
		return ErrEmptyOutcomeDescription
	}
	return nil
}

// EmbeddingText returns the canonical "CODE: description" form used
// when encoding an outcome into a vector.
func (c CLO) EmbeddingText() string {
	return fmt.Sprintf("%s: %s", c.Code, c.Description)
}

// EmbeddingText returns the canonical "CODE: description" form used
// when encoding an outcome into a vector.
func (p PLO) EmbeddingText() string {
	return fmt.Sprintf("%s: %s", p.Code, p.Description)
}
