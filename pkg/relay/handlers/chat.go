package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"mesmer-studio/mesmer/pkg/relay"
	"mesmer-studio/mesmer/pkg/relay/middleware"
	"mesmer-studio/mesmer/pkg/relay/types"
	"mesmer-studio/mesmer/pkg/upstream"
)

// ChatHandler serves POST /api/chat: a buffered pass-through chat
// completion.
type ChatHandler struct {
	upstream UpstreamClient
}

// NewChatHandler creates a chat handler.
func NewChatHandler(client UpstreamClient) *ChatHandler {
	return &ChatHandler{upstream: client}
}

// ServeHTTP implements http.Handler.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	startTime := time.Now()

	if r.Method != http.MethodPost {
		_ = relay.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed. Use POST.")
		return
	}

	req, err := relay.ParseChatRequest(r)
	if err != nil {
		status, envelope := relay.HandleError(err)
		_ = relay.WriteJSON(w, status, envelope)
		return
	}

	payload := chatPayload(req)

	body, err := h.upstream.CreateChatCompletion(ctx, payload)
	if err != nil {
		slog.ErrorContext(ctx, "upstream chat completion failed",
			"request_id", requestID,
			"model", req.Model,
			"error", err,
		)
		status, envelope := relay.HandleError(err)
		_ = relay.WriteJSON(w, status, envelope)
		return
	}

	slog.InfoContext(ctx, "chat completion relayed",
		"request_id", requestID,
		"model", req.Model,
		"messages", len(req.Messages),
		"latency_ms", time.Since(startTime).Milliseconds(),
	)

	if err := relay.WriteRawJSON(w, http.StatusOK, body); err != nil {
		slog.ErrorContext(ctx, "failed to write chat response",
			"request_id", requestID,
			"error", err,
		)
	}
}

// chatPayload maps a validated chat request onto the upstream payload.
func chatPayload(req *types.ChatRequest) *upstream.ChatPayload {
	messages := make([]upstream.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, upstream.Message{Role: m.Role, Content: m.Content})
	}

	return &upstream.ChatPayload{
		Model:       req.Model,
		Messages:    messages,
		MaxTokens:   *req.MaxTokens,
		Temperature: *req.Temperature,
	}
}
