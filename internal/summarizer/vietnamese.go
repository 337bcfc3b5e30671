package summarizer

import (
	"context"
	"strings"
)

// vietnameseChars is the diacritic set used to detect Vietnamese text.
const vietnameseChars = "àáảãạăằắẳẵặâầấẩẫậèéẻẽẹêềếểễệđìíỉĩịòóỏõọôồốổỗộơờớởỡợùúủũụưừứửữựỳýỷỹỵ"

// Tagger extracts key terms from Vietnamese text. It stands in for an
// external word-segmentation and POS-tagging service; when none is
// configured the summary pipeline skips enhancement.
type Tagger interface {
	KeyPhrases(ctx context.Context, text string) ([]string, error)
}

// ContainsVietnamese reports whether the text carries Vietnamese
// diacritics.
func ContainsVietnamese(text string) bool {
	lower := strings.ToLower(text)
	return strings.ContainsAny(lower, vietnameseChars)
}

// EnhanceVietnamese appends up to three key terms from the original
// text to the summary, parenthesized, skipping terms the summary
// already contains. Tagger failures leave the summary unchanged.
func EnhanceVietnamese(ctx context.Context, tagger Tagger, summary, originalText string) string {
	if tagger == nil {
		return summary
	}
	phrases, err := tagger.KeyPhrases(ctx, originalText)
	if err != nil {
		return summary
	}

	enhanced := summary
	added := 0
	for _, phrase := range phrases {
		if added == 3 {
			break
		}
		if len([]rune(phrase)) <= 2 {
			continue
		}
		if strings.Contains(strings.ToLower(enhanced), strings.ToLower(phrase)) {
			continue
		}
		enhanced += " (" + phrase + ")"
		added++
	}
	return enhanced
}
