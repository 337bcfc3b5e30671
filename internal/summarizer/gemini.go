package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

// GeminiConfig configures the Gemini summarizer client.
type GeminiConfig struct {
	APIKey    string
	ModelName string
}

// Gemini implements Summarizer using Google's Gemini API.
type Gemini struct {
	logger *slog.Logger
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini summarizer with the provided configuration.
func NewGemini(ctx context.Context, logger *slog.Logger, cfg GeminiConfig) (*Gemini, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	if cfg.ModelName == "" {
		cfg.ModelName = "gemini-2.0-flash"
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{
		logger: logger.With("component", "gemini_summarizer"),
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// Name returns the identifier of this summarizer implementation.
func (g *Gemini) Name() string { return "gemini" }

// Summarize asks the model for a summary within the word bounds and
// returns the plain-text result.
func (g *Gemini) Summarize(ctx context.Context, text string, bounds Bounds) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	if bounds.MaxLength <= 0 {
		bounds = DefaultBounds()
	}

	prompt := fmt.Sprintf(
		"Summarize the following course syllabus content in plain prose, "+
			"between %d and %d words. Do not add headings or bullet points.\n\n%s",
		bounds.MinLength, bounds.MaxLength, text)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no content generated", ErrInvalidResponse)
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", ErrInvalidResponse)
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			out.WriteString(part.Text)
		}
	}
	summary := strings.TrimSpace(out.String())
	if summary == "" {
		return "", fmt.Errorf("%w: empty summary text", ErrInvalidResponse)
	}

	g.logger.DebugContext(ctx, "gemini summary generated", "words", len(strings.Fields(summary)))
	return summary, nil
}
