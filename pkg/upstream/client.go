// Package upstream implements the HTTP client for the OpenAI-compatible
// inference server the relay forwards to.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	modelsPath          = "/v1/models"
	chatCompletionsPath = "/v1/chat/completions"

	// errorBodyLimit caps how much of an upstream error body is captured
	// for logging.
	errorBodyLimit = 8 * 1024
)

// Config contains the settings needed to reach the inference server.
type Config struct {
	// BaseURL is the root of the OpenAI-compatible API, without a trailing
	// slash (e.g. "http://localhost:1234").
	BaseURL string

	// APIKey is sent as a bearer token on every request.
	APIKey string

	// Timeout bounds buffered requests. Zero means no timeout, which is
	// required for streaming completions.
	Timeout time.Duration
}

// Client talks to the OpenAI-compatible inference server.
// Responses are passed through verbatim; the client never rewrites or
// reinterprets upstream JSON.
type Client struct {
	config Config
	http   *http.Client
}

// New creates a client with a pooled transport.
func New(cfg Config) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	transport := &http.Transport{
		MaxIdleConns:        16,
		MaxIdleConnsPerHost: 16,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		config: cfg,
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
	}
}

// ListModels fetches the upstream model list and returns the JSON body
// verbatim.
func (c *Client) ListModels(ctx context.Context) (json.RawMessage, error) {
	resp, err := c.do(ctx, http.MethodGet, modelsPath, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}
	return body, nil
}

// CreateChatCompletion sends a buffered chat completion request and returns
// the upstream JSON body verbatim.
func (c *Client) CreateChatCompletion(ctx context.Context, payload *ChatPayload) (json.RawMessage, error) {
	resp, err := c.do(ctx, http.MethodPost, chatCompletionsPath, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}
	return body, nil
}

// StreamChatCompletion sends a chat completion request with stream enabled
// and returns the live response body. The caller owns the body and must
// close it; every byte it yields is already Server-Sent-Events framed by the
// upstream. Cancelling ctx aborts the upstream request.
func (c *Client) StreamChatCompletion(ctx context.Context, payload *ChatPayload) (io.ReadCloser, error) {
	streamed := *payload
	streamed.Stream = true

	resp, err := c.do(ctx, http.MethodPost, chatCompletionsPath, &streamed)
	if err != nil {
		return nil, err
	}
	if resp.Body == nil {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: "empty response body"}
	}
	return resp.Body, nil
}

// do performs a single request. There are no retries at any layer: a
// failure is surfaced to the caller immediately. Non-2xx statuses are
// returned as *StatusError with the body drained and closed.
func (c *Client) do(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	var bodyReader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.DebugContext(ctx, "sending upstream request",
		"method", method,
		"path", path,
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		resp.Body.Close()
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(errBody)),
		}
	}

	return resp, nil
}
