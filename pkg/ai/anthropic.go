package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

const anthropicVersion = "2023-06-01"

// AnthropicClient is a minimal client for the Anthropic Messages API
type AnthropicClient struct {
	apiKey    string
	baseURL   string
	model     string
	maxTokens int
	client    *http.Client
}

// NewAnthropicClient creates a client from the provided config
func NewAnthropicClient(cfg *config.AnthropicConfig, maxTokens int, timeout time.Duration) *AnthropicClient {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://api.anthropic.com"
	}

	return &AnthropicClient{
		apiKey:    cfg.APIKey,
		baseURL:   base,
		model:     cfg.Model,
		maxTokens: maxTokens,
		client:    &http.Client{Timeout: timeout},
	}
}

// MessagesRequest is the payload for /v1/messages
type MessagesRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []ChatMessage `json:"messages"`
}

// MessagesResponse is the subset of the response we read
type MessagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type anthropicError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the prompt as one user message and returns the trimmed
// text of the first content block.
func (a *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	payload := MessagesRequest{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages:  []ChatMessage{{Role: "user", Content: prompt}},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/messages", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var ae anthropicError
		if json.Unmarshal(body, &ae) == nil && ae.Error.Message != "" {
			return "", fmt.Errorf("anthropic returned status %d: %s: %s", resp.StatusCode, ae.Error.Type, ae.Error.Message)
		}
		return "", fmt.Errorf("anthropic returned status %d", resp.StatusCode)
	}

	var mr MessagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return "", fmt.Errorf("failed to decode anthropic response: %w", err)
	}
	if len(mr.Content) == 0 {
		return "", ErrEmptyCompletion
	}
	text := strings.TrimSpace(mr.Content[0].Text)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
