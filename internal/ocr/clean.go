package ocr

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	// Safelist of word characters and common punctuation; everything
	// else is treated as an OCR artifact.
	artifactRegex = regexp.MustCompile(`[^\w\s.,;:!?\-()\[\]"'/]`)
)

// CleanOptions controls the lossy parts of text cleanup.
type CleanOptions struct {
	// GlyphFix applies the pipe-to-I and zero-to-O substitutions for
	// common OCR glyph confusion. It also corrupts legitimate digits,
	// so it can be disabled per deployment.
	GlyphFix bool
}

// Clean normalizes raw OCR output: whitespace runs collapse to single
// spaces and characters outside the safelist are removed. Glyph
// substitutions run only when enabled.
func Clean(text string, opts CleanOptions) string {
	if text == "" {
		return ""
	}

	cleaned := whitespaceRegex.ReplaceAllString(text, " ")

	// Glyph substitution must run before artifact removal, which would
	// otherwise strip the pipe character.
	if opts.GlyphFix {
		cleaned = strings.ReplaceAll(cleaned, "|", "I")
		cleaned = strings.ReplaceAll(cleaned, "0", "O")
	}

	cleaned = artifactRegex.ReplaceAllString(cleaned, "")

	return strings.TrimSpace(cleaned)
}

// ConfidenceScore estimates extraction quality in [0, 1]. The score
// starts at 1.0 and is reduced by the special-character ratio when it
// exceeds 0.1 and by the single-character-token ratio when it exceeds
// 0.2.
func ConfidenceScore(text string) float64 {
	if text == "" {
		return 0.0
	}

	score := 1.0

	special := 0
	total := 0
	for _, r := range text {
		total++
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			special++
		}
	}
	specialRatio := float64(special) / float64(total)
	if specialRatio > 0.1 {
		score -= specialRatio
	}

	words := strings.Fields(text)
	if len(words) > 0 {
		single := 0
		for _, w := range words {
			if len([]rune(w)) == 1 {
				single++
			}
		}
		singleRatio := float64(single) / float64(len(words))
		if singleRatio > 0.2 {
			score -= singleRatio
		}
	}

	if score < 0 {
		return 0.0
	}
	if score > 1 {
		return 1.0
	}
	return score
}
