package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTagger returns a fixed phrase list.
type stubTagger struct {
	phrases []string
	err     error
}

func (s *stubTagger) KeyPhrases(_ context.Context, _ string) ([]string, error) {
	return s.phrases, s.err
}

func TestContainsVietnamese(t *testing.T) {
	t.Parallel()

	assert.True(t, ContainsVietnamese("Môn học lập trình cơ bản"))
	assert.True(t, ContainsVietnamese("GIỚI THIỆU"))
	assert.False(t, ContainsVietnamese("Introduction to programming"))
	assert.False(t, ContainsVietnamese(""))
}

func TestEnhanceVietnamese(t *testing.T) {
	t.Parallel()

	t.Run("appends up to three new terms", func(t *testing.T) {
		t.Parallel()

		tagger := &stubTagger{phrases: []string{"lập trình", "thuật toán", "dữ liệu", "hệ thống"}}
		enhanced := EnhanceVietnamese(context.Background(), tagger, "Tóm tắt môn học.", "ignored")

		assert.Contains(t, enhanced, "(lập trình)")
		assert.Contains(t, enhanced, "(thuật toán)")
		assert.Contains(t, enhanced, "(dữ liệu)")
		assert.NotContains(t, enhanced, "hệ thống")
	})

	t.Run("skips terms already present", func(t *testing.T) {
		t.Parallel()

		tagger := &stubTagger{phrases: []string{"lập trình"}}
		summary := "Môn học về lập trình."
		assert.Equal(t, summary, EnhanceVietnamese(context.Background(), tagger, summary, "ignored"))
	})

	t.Run("skips very short terms", func(t *testing.T) {
		t.Parallel()

		tagger := &stubTagger{phrases: []string{"và", "hệ thống"}}
		enhanced := EnhanceVietnamese(context.Background(), tagger, "Tóm tắt.", "ignored")
		assert.NotContains(t, enhanced, "(và)")
		assert.Contains(t, enhanced, "(hệ thống)")
	})

	t.Run("tagger failure leaves summary unchanged", func(t *testing.T) {
		t.Parallel()

		tagger := &stubTagger{err: errors.New("segmentation service down")}
		summary := "Tóm tắt môn học."
		assert.Equal(t, summary, EnhanceVietnamese(context.Background(), tagger, summary, "ignored"))
	})

	t.Run("nil tagger leaves summary unchanged", func(t *testing.T) {
		t.Parallel()

		summary := "Tóm tắt môn học."
		assert.Equal(t, summary, EnhanceVietnamese(context.Background(), nil, summary, "ignored"))
	})
}

func TestFrequencyTagger_KeyPhrases(t *testing.T) {
	t.Parallel()

	tagger := NewFrequencyTagger()

	t.Run("ranks by frequency", func(t *testing.T) {
		t.Parallel()

		text := "database database database programming programming algebra"
		phrases, err := tagger.KeyPhrases(context.Background(), text)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(phrases), 3)
		assert.Equal(t, "database", phrases[0])
		assert.Equal(t, "programming", phrases[1])
	})

	t.Run("ignores short words and strips punctuation", func(t *testing.T) {
		t.Parallel()

		phrases, err := tagger.KeyPhrases(context.Background(), "to do is (systems) systems.")
		require.NoError(t, err)
		assert.Equal(t, []string{"systems"}, phrases)
	})

	t.Run("caps the number of terms", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		for _, w := range []string{
			"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
			"golf", "hotel", "india", "juliett", "kilo", "lima",
		} {
			b.WriteString(w)
			b.WriteString(" ")
		}
		phrases, err := tagger.KeyPhrases(context.Background(), b.String())
		require.NoError(t, err)
		assert.Len(t, phrases, maxKeyTerms)
	})
}
