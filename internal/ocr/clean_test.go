package ocr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		got := Clean("Course   Syllabus\n\n\tFall  2024", CleanOptions{})
		assert.Equal(t, "Course Syllabus Fall 2024", got)
	})

	t.Run("removes artifact characters but keeps punctuation", func(t *testing.T) {
		t.Parallel()

		got := Clean(`Grading: 40% exam, 60% homework © ™`, CleanOptions{})
		assert.NotContains(t, got, "%")
		assert.NotContains(t, got, "©")
		assert.Contains(t, got, "Grading:")
		assert.Contains(t, got, "exam,")
	})

	t.Run("glyph fix substitutes pipe and zero", func(t *testing.T) {
		t.Parallel()

		got := Clean("|ntroduction t0 Databases", CleanOptions{GlyphFix: true})
		assert.Equal(t, "Introduction tO Databases", got)
	})

	t.Run("glyph fix disabled keeps digits", func(t *testing.T) {
		t.Parallel()

		got := Clean("CS 101 section 2024", CleanOptions{GlyphFix: false})
		assert.Equal(t, "CS 101 section 2024", got)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", Clean("", CleanOptions{}))
	})
}

func TestConfidenceScore(t *testing.T) {
	t.Parallel()

	t.Run("empty text scores zero", func(t *testing.T) {
		t.Parallel()
		assert.Zero(t, ConfidenceScore(""))
	})

	t.Run("clean prose scores high", func(t *testing.T) {
		t.Parallel()

		score := ConfidenceScore("This course covers the foundations of databases and transactions")
		assert.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("garbage is penalized", func(t *testing.T) {
		t.Parallel()

		clean := ConfidenceScore("regular sentence with normal words here")
		noisy := ConfidenceScore("@#$ &* ^% @@ ## !! ~~ || word")
		assert.Less(t, noisy, clean)
	})

	t.Run("single character tokens are penalized", func(t *testing.T) {
		t.Parallel()

		fragmented := ConfidenceScore("a b c d e f g h i j")
		assert.Less(t, fragmented, 1.0)
	})

	t.Run("score is clamped to zero", func(t *testing.T) {
		t.Parallel()

		score := ConfidenceScore(strings.Repeat("@ ", 200))
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	})
}
