package ocr

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractPDFText pulls the embedded text layer out of a PDF,
// page by page. Scanned PDFs without a text layer yield an empty
// string; the caller falls back to the OCR engine in that case.
func ExtractPDFText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var out strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A broken page does not invalidate the rest of the document
			continue
		}
		out.WriteString(text)
		out.WriteString("\n")
	}
	return out.String(), nil
}

// Usable reports whether extracted text is worth keeping or the
// document should go through the OCR engine instead.
func Usable(text string) bool {
	return len(strings.Fields(text)) >= 3
}
