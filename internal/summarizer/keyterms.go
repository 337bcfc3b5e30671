package summarizer

import (
	"context"
	"sort"
	"strings"
)

// maxKeyTerms caps how many terms the tagger returns.
const maxKeyTerms = 10

// FrequencyTagger extracts key terms by word frequency. It is a local
// stand-in for an external word-segmentation service and favors longer,
// repeated words.
type FrequencyTagger struct{}

// NewFrequencyTagger creates a FrequencyTagger.
func NewFrequencyTagger() *FrequencyTagger {
	return &FrequencyTagger{}
}

// KeyPhrases returns the most frequent words of the text, original
// casing preserved, most frequent first. Words shorter than three
// runes are ignored.
func (t *FrequencyTagger) KeyPhrases(_ context.Context, text string) ([]string, error) {
	counts := make(map[string]int)
	first := make(map[string]string)
	var order []string

	for _, word := range strings.Fields(text) {
		word = strings.Trim(word, `.,;:!?()[]"'`)
		if len([]rune(word)) < 3 {
			continue
		}
		key := strings.ToLower(word)
		if counts[key] == 0 {
			order = append(order, key)
			first[key] = word
		}
		counts[key]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxKeyTerms {
		order = order[:maxKeyTerms]
	}

	phrases := make([]string, len(order))
	for i, key := range order {
		phrases[i] = first[key]
	}
	return phrases, nil
}
