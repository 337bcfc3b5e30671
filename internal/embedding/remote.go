package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RemoteConfig configures the remote embeddings client.
type RemoteConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Remote is an OpenAI-compatible embeddings client. It treats the
// sentence-embedding model as an opaque text-in vector-out capability.
type Remote struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewRemote creates a remote embeddings client from the configuration.
func NewRemote(cfg RemoteConfig) (*Remote, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("embedding endpoint base URL cannot be empty")
	}
	if cfg.Model == "" {
		cfg.Model = "all-MiniLM-L6-v2"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Remote{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// Name returns the identifier of this embedder implementation.
func (r *Remote) Name() string { return "remote" }

// Prepare is a no-op; the remote model needs no corpus pass.
func (r *Remote) Prepare(_ context.Context, _ []string) error { return nil }

// Embed returns the embedding vector for the given text.
func (r *Remote) Embed(ctx context.Context, text string) ([]float64, error) {
	type requestBody struct {
		Input string `json:"input"`
		Model string `json:"model"`
	}
	type responseBody struct {
		Data []struct {
			Embedding []float64 `json:"embedding"`
		} `json:"data"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error,omitempty"`
	}

	data, err := json.Marshal(requestBody{Input: text, Model: r.model})
	if err != nil {
		return nil, fmt.Errorf("failed to encode embedding request: %w", err)
	}

	url := r.baseURL + "/embeddings"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to build embedding request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedding response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedding endpoint returned status %d", resp.StatusCode)
	}

	var parsed responseBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode embedding response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("embedding endpoint error: %s", parsed.Error.Message)
	}
	if len(parsed.Data) == 0 || len(parsed.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("embedding endpoint returned no vector")
	}
	return parsed.Data[0].Embedding, nil
}
