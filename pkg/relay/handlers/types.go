// Package handlers implements the HTTP endpoints of the relay: model
// listing, chat, style analysis, and script generation (each with buffered
// and, where applicable, streaming variants), plus the static UI fallback.
package handlers

import (
	"context"
	"encoding/json"
	"io"

	"mesmer-studio/mesmer/pkg/upstream"
)

// UpstreamClient is the interface handlers use to reach the inference
// server. *upstream.Client satisfies it; tests substitute fakes.
type UpstreamClient interface {
	// ListModels returns the upstream model list JSON verbatim.
	ListModels(ctx context.Context) (json.RawMessage, error)

	// CreateChatCompletion performs a buffered completion and returns the
	// upstream JSON verbatim.
	CreateChatCompletion(ctx context.Context, payload *upstream.ChatPayload) (json.RawMessage, error)

	// StreamChatCompletion performs a streaming completion and returns the
	// live upstream body. Cancelling ctx aborts the upstream request.
	StreamChatCompletion(ctx context.Context, payload *upstream.ChatPayload) (io.ReadCloser, error)
}
