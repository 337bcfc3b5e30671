package summarizer

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

var sentenceSplitRegex = regexp.MustCompile(`[.!?]+`)

// Extractive selects and concatenates existing sentences instead of
// generating new text. Sentences are scored by word count decayed by
// position, favoring longer sentences near the start of the document.
type Extractive struct{}

// NewExtractive creates the extractive fallback summarizer.
func NewExtractive() *Extractive {
	return &Extractive{}
}

// Name returns the identifier of this summarizer implementation.
func (e *Extractive) Name() string { return "extractive" }

// Summarize greedily accumulates the highest-scoring sentences until
// the word budget is exhausted.
func (e *Extractive) Summarize(_ context.Context, text string, bounds Bounds) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	maxWords := bounds.MaxLength
	if maxWords <= 0 {
		maxWords = DefaultBounds().MaxLength
	}

	var sentences []string
	for _, raw := range sentenceSplitRegex.Split(text, -1) {
		if s := strings.TrimSpace(raw); s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		if words := strings.Fields(text); len(words) > maxWords {
			return strings.Join(words[:maxWords], " ") + "...", nil
		}
		return strings.TrimSpace(text), nil
	}

	type scored struct {
		score    float64
		sentence string
	}
	ranked := make([]scored, 0, len(sentences))
	total := float64(len(sentences))
	for i, sentence := range sentences {
		// Prefer longer, earlier sentences
		score := float64(len(strings.Fields(sentence))) * (1 - float64(i)/total)
		ranked = append(ranked, scored{score: score, sentence: sentence})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	var selected []string
	used := 0
	for _, candidate := range ranked {
		n := len(strings.Fields(candidate.sentence))
		if used+n > maxWords {
			break
		}
		selected = append(selected, candidate.sentence)
		used += n
	}
	if len(selected) == 0 {
		selected = append(selected, ranked[0].sentence)
	}
	return strings.Join(selected, ". ") + ".", nil
}
