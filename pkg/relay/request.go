// Package relay contains the HTTP plumbing shared by the relay endpoints:
// request parsing with size limits, response and SSE writing, and the
// mapping from operation errors to the uniform error envelope.
package relay

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"mesmer-studio/mesmer/pkg/relay/types"
)

// MaxRequestBodySize is the maximum allowed request body size (2 MiB).
const MaxRequestBodySize = 2 * 1024 * 1024

// ParseChatRequest decodes and validates the body of POST /api/chat,
// applying defaults for omitted optional fields.
func ParseChatRequest(r *http.Request) (*types.ChatRequest, error) {
	var req types.ChatRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// ParseStyleAnalysisRequest decodes and validates the body of the
// analyze-style endpoints.
func ParseStyleAnalysisRequest(r *http.Request) (*types.StyleAnalysisRequest, error) {
	var req types.StyleAnalysisRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// ParseScriptGenerationRequest decodes and validates the body of the
// generate-script endpoints, applying defaults for omitted optional fields.
func ParseScriptGenerationRequest(r *http.Request) (*types.ScriptGenerationRequest, error) {
	var req types.ScriptGenerationRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// decodeBody reads a JSON request body into v, enforcing the body size limit.
func decodeBody(r *http.Request, v any) error {
	limited := io.LimitReader(r.Body, MaxRequestBodySize+1)
	body, err := io.ReadAll(limited)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	if len(body) > MaxRequestBodySize {
		return &types.ValidationError{
			Field:   "body",
			Message: fmt.Sprintf("Request body exceeds maximum size of %d bytes", MaxRequestBodySize),
		}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &types.ValidationError{
			Field:   "body",
			Message: fmt.Sprintf("Invalid JSON: %v", err),
		}
	}
	return nil
}
