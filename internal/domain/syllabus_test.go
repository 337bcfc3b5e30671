package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyllabusField(t *testing.T) {
	t.Parallel()

	s := Syllabus{
		Description:       "desc",
		Objectives:        "obj",
		Prerequisites:     "prereq",
		AssessmentMethods: "assess",
		Textbooks:         "books",
		References:        "refs",
	}

	for _, name := range DiffFields {
		assert.NotEmpty(t, s.Field(name), "field %s", name)
	}
	assert.Equal(t, "prereq", s.Field("prerequisites"))
	assert.Empty(t, s.Field("courseCode"), "non-diff fields are not addressable by name")
}

func TestSyllabusContentText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		syllabus Syllabus
		want     string
	}{
		{"both fields", Syllabus{Description: "a", Objectives: "b"}, "a b"},
		{"description only", Syllabus{Description: "a"}, "a"},
		{"objectives only", Syllabus{Objectives: "b"}, "b"},
		{"empty", Syllabus{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.syllabus.ContentText())
		})
	}
}

func TestOutcomeValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid CLO", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, CLO{Code: "CLO1", Description: "explain"}.Validate())
	})

	t.Run("missing code", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, CLO{Description: "explain"}.Validate(), ErrEmptyOutcomeCode)
		assert.ErrorIs(t, PLO{Description: "explain"}.Validate(), ErrEmptyOutcomeCode)
	})

	t.Run("missing description", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, CLO{Code: "CLO1"}.Validate(), ErrEmptyOutcomeDescription)
	})
}

func TestOutcomeEmbeddingText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CLO1: design schemas", CLO{Code: "CLO1", Description: "design schemas"}.EmbeddingText())
	assert.Equal(t, "PLO2: apply theory", PLO{Code: "PLO2", Description: "apply theory"}.EmbeddingText())
}
