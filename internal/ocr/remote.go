package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RemoteConfig configures the remote OCR engine client.
type RemoteConfig struct {
	BaseURL  string
	Language string
	Timeout  time.Duration
}

// Remote is an HTTP client for an OCR sidecar exposing a /recognize
// endpoint that accepts raw image bytes and returns recognized text.
type Remote struct {
	baseURL  string
	language string
	client   *http.Client
}

// NewRemote creates a remote OCR engine client.
func NewRemote(cfg RemoteConfig) (*Remote, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("ocr engine base URL cannot be empty")
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Remote{
		baseURL:  cfg.BaseURL,
		language: cfg.Language,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

// Name returns the identifier of this engine implementation.
func (r *Remote) Name() string { return "remote" }

// Recognize submits the image bytes and returns the recognized text.
func (r *Remote) Recognize(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", ErrEmptyFile
	}

	url := fmt.Sprintf("%s/recognize?lang=%s", r.baseURL, r.language)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(image))
	if err != nil {
		return "", fmt.Errorf("failed to build ocr request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocr request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read ocr response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ocr engine returned status %d", resp.StatusCode)
	}

	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode ocr response: %w", err)
	}
	return parsed.Text, nil
}
