// Package ocr turns uploaded syllabus scans into text: embedded-text
// extraction for PDFs, an external OCR engine for images, then cleanup,
// section segmentation and a heuristic confidence score.
package ocr

import (
	"context"
	"errors"
)

// File type identifiers accepted by the extraction endpoints.
const (
	FileTypePDF   = "pdf"
	FileTypeImage = "image"
)

// Common errors
var (
	ErrEmptyFile          = errors.New("file content cannot be empty")
	ErrEngineNotAvailable = errors.New("ocr engine is not available")
)

// Engine recognizes text in rendered page or image bytes. It stands in
// for an external OCR capability; the service degrades the whole OCR
// family when none is configured.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, image []byte) (string, error)
}
