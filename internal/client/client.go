// Package client provides the API client and session-scoped history manager
// used by frontends of the prompt service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/HassanElshazlyEida/Stunning/internal/config"
	"github.com/HassanElshazlyEida/Stunning/internal/domain"
	"github.com/HassanElshazlyEida/Stunning/internal/domain/prompt"
	"github.com/HassanElshazlyEida/Stunning/internal/resilience"
)

// Client talks to the prompt API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *resilience.Breaker
}

// NewClient creates a new API client.
func NewClient(cfg config.Client) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// SetBreaker attaches a circuit breaker to all outgoing HTTP calls.
func (c *Client) SetBreaker(b *resilience.Breaker) {
	c.breaker = b
}

// Generate creates a new prompt with generated sections.
func (c *Client) Generate(ctx context.Context, text, sessionID string) (*prompt.Prompt, error) {
	body, err := json.Marshal(prompt.CreateRequest{Text: text, SessionID: sessionID})
	if err != nil {
		return nil, fmt.Errorf("marshal generate request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/prompts/generate", body)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	return decodePrompt(resp)
}

// History returns all prompts across sessions, newest first.
func (c *Client) History(ctx context.Context) ([]prompt.Prompt, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/prompts/history", nil)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return decodePrompts(resp)
}

// SessionPrompts returns the prompts of one session, newest first.
func (c *Client) SessionPrompts(ctx context.Context, sessionID string) ([]prompt.Prompt, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/prompts/session/"+sessionID, nil)
	if err != nil {
		return nil, fmt.Errorf("session prompts: %w", err)
	}
	return decodePrompts(resp)
}

// Get fetches a single prompt by ID.
func (c *Client) Get(ctx context.Context, id string) (*prompt.Prompt, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/prompts/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("get prompt: %w", err)
	}
	return decodePrompt(resp)
}

// Update replaces a prompt's text, regenerating its sections server-side.
func (c *Client) Update(ctx context.Context, id, text string) (*prompt.Prompt, error) {
	body, err := json.Marshal(prompt.UpdateRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("marshal update request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPut, "/api/prompts/"+id, body)
	if err != nil {
		return nil, fmt.Errorf("update prompt: %w", err)
	}
	return decodePrompt(resp)
}

// Delete removes a prompt and returns the deleted document.
func (c *Client) Delete(ctx context.Context, id string) (*prompt.Prompt, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/api/prompts/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("delete prompt: %w", err)
	}
	return decodePrompt(resp)
}

func decodePrompt(data []byte) (*prompt.Prompt, error) {
	var p prompt.Prompt
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal prompt: %w", err)
	}
	return &p, nil
}

func decodePrompts(data []byte) ([]prompt.Prompt, error) {
	var prompts []prompt.Prompt
	if err := json.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("unmarshal prompts: %w", err)
	}
	return prompts, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var result []byte
	call := func() error {
		var bodyReader io.Reader
		if body != nil {
			bodyReader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("http request: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}

		if resp.StatusCode >= 400 {
			return apiError(resp.StatusCode, data)
		}

		result = data
		return nil
	}

	if c.breaker != nil {
		if err := c.breaker.Execute(call); err != nil {
			return nil, err
		}
		return result, nil
	}

	if err := call(); err != nil {
		return nil, err
	}
	return result, nil
}

// apiError maps an error response onto the domain error taxonomy so callers
// can branch with errors.Is.
func apiError(status int, data []byte) error {
	var resp struct {
		Error string `json:"error"`
	}
	msg := "unknown error"
	if err := json.Unmarshal(data, &resp); err == nil && resp.Error != "" {
		msg = resp.Error
	}

	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, domain.ErrNotFound)
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", domain.ErrValidation, msg)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", msg, domain.ErrConflict)
	default:
		return fmt.Errorf("api error %d: %s", status, msg)
	}
}
