// Package chadgpt implements the client for the ChadGPT-style model
// aggregator: one HTTP endpoint fronting several chat models, selected by
// a path segment.
package chadgpt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gdugdh24/godate-backend/internal/config"
	"github.com/gdugdh24/godate-backend/internal/domain"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg *config.AIConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

type askRequest struct {
	Message string `json:"message"`
	APIKey  string `json:"api_key"`
}

type askResponse struct {
	IsSuccess      bool   `json:"is_success"`
	Response       string `json:"response"`
	UsedWordsCount int    `json:"used_words_count"`
	ErrorMessage   string `json:"error_message"`
}

// Completion is a successful model reply.
type Completion struct {
	Text      string
	UsedWords int
}

// ProviderError is a failure the provider itself reported (as opposed to
// the provider being unreachable).
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// Ask sends one message to the given model and waits for the reply.
// Transport failures and non-2xx statuses surface as
// domain.ErrAIUnavailable; provider-reported failures as *ProviderError.
func (c *Client) Ask(ctx context.Context, model, message string) (*Completion, error) {
	body, err := json.Marshal(askRequest{Message: message, APIKey: c.apiKey})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/public/%s", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAIUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrAIUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAIUnavailable, err)
	}

	var parsed askResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", domain.ErrAIUnavailable, err)
	}

	if !parsed.IsSuccess {
		msg := parsed.ErrorMessage
		if msg == "" {
			msg = "AI ошибка"
		}
		return nil, &ProviderError{Message: msg}
	}

	return &Completion{
		Text:      parsed.Response,
		UsedWords: parsed.UsedWordsCount,
	}, nil
}
