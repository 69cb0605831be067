package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Completion parameters are fixed; the API exposes no knobs to callers.
const (
	maxTokens   = 500
	temperature = 0.7
)

// CerebrasProvider implements port.AIProvider using the Cerebras
// chat-completions REST API (OpenAI-compatible).
type CerebrasProvider struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewCerebrasProvider creates a new Cerebras-backed AI provider.
func NewCerebrasProvider(baseURL, model, apiKey string) *CerebrasProvider {
	return &CerebrasProvider{
		baseURL:    baseURL,
		model:      model,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// ModelName returns the chat model identifier.
func (p *CerebrasProvider) ModelName() string {
	return p.model
}

// Chat sends a single completion request and returns the first choice's text.
func (p *CerebrasProvider) Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload := map[string]interface{}{
		"model": p.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
		"max_tokens":  maxTokens,
		"temperature": temperature,
	}

	body, err := p.post(ctx, "/v1/chat/completions", payload)
	if err != nil {
		return "", fmt.Errorf("cerebras chat: %w", err)
	}

	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("cerebras chat decode: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("cerebras chat: empty choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// post is a helper for POST requests to the Cerebras API. Non-2xx responses
// surface the raw upstream body in the error.
func (p *CerebrasProvider) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("cerebras API error (%d): %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
