package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/smd-system/ai-service/internal/ocr"
)

// OCRStatistics are the size and quality counters of one extraction.
type OCRStatistics struct {
	CharacterCount  int     `json:"character_count"`
	WordCount       int     `json:"word_count"`
	LineCount       int     `json:"line_count"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// OCRResult is the payload of a completed OCR task.
type OCRResult struct {
	ExtractedText string        `json:"extracted_text"`
	RawText       string        `json:"raw_text"`
	Analysis      ocr.Structure `json:"analysis"`
	Statistics    OCRStatistics `json:"statistics"`
}

// OCRService extracts, cleans and analyzes text from uploaded files.
type OCRService struct {
	engine       ocr.Engine // nil when the OCR family is unavailable
	cleanOptions ocr.CleanOptions
	logger       *slog.Logger
}

// NewOCRService creates an OCRService. A nil engine disables image
// recognition and the fallback path for scanned PDFs.
func NewOCRService(engine ocr.Engine, cleanOptions ocr.CleanOptions, logger *slog.Logger) *OCRService {
	return &OCRService{
		engine:       engine,
		cleanOptions: cleanOptions,
		logger:       logger.With("component", "ocr_service"),
	}
}

// Available reports whether the OCR engine is configured.
func (s *OCRService) Available() bool {
	return s.engine != nil
}

// Extract produces cleaned text, structure analysis and statistics for
// the uploaded file. PDFs try the embedded text layer first and fall
// back to the engine; images always go through the engine.
func (s *OCRService) Extract(ctx context.Context, content []byte, fileType string) (*OCRResult, error) {
	if len(content) == 0 {
		return nil, ocr.ErrEmptyFile
	}

	var rawText string
	switch fileType {
	case ocr.FileTypePDF:
		text, err := ocr.ExtractPDFText(content)
		if err != nil || !ocr.Usable(text) {
			if err != nil {
				s.logger.Warn("pdf text extraction failed, falling back to ocr engine", "error", err)
			}
			recognized, recErr := s.recognize(ctx, content)
			if recErr != nil {
				return nil, recErr
			}
			rawText = recognized
		} else {
			rawText = text
		}
	case ocr.FileTypeImage:
		recognized, err := s.recognize(ctx, content)
		if err != nil {
			return nil, err
		}
		rawText = recognized
	default:
		return nil, fmt.Errorf("unsupported file type %q", fileType)
	}

	cleaned := ocr.Clean(rawText, s.cleanOptions)

	return &OCRResult{
		ExtractedText: cleaned,
		RawText:       rawText,
		Analysis:      ocr.AnalyzeStructure(rawText),
		Statistics: OCRStatistics{
			CharacterCount:  len([]rune(cleaned)),
			WordCount:       len(strings.Fields(cleaned)),
			LineCount:       len(strings.Split(cleaned, "\n")),
			ConfidenceScore: ocr.ConfidenceScore(rawText),
		},
	}, nil
}

func (s *OCRService) recognize(ctx context.Context, content []byte) (string, error) {
	if s.engine == nil {
		return "", ocr.ErrEngineNotAvailable
	}
	text, err := s.engine.Recognize(ctx, content)
	if err != nil {
		return "", fmt.Errorf("ocr recognition failed: %w", err)
	}
	return text, nil
}
