package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"mesmer-studio/mesmer/pkg/relay"
	"mesmer-studio/mesmer/pkg/relay/middleware"
	"mesmer-studio/mesmer/pkg/relay/prompt"
	"mesmer-studio/mesmer/pkg/relay/types"
	"mesmer-studio/mesmer/pkg/telemetry/metrics"
	"mesmer-studio/mesmer/pkg/upstream"
)

// ScriptHandler serves POST /api/generate-script and
// POST /api/generate-script/stream.
type ScriptHandler struct {
	upstream  UpstreamClient
	collector *metrics.Collector
	streaming bool
}

// NewScriptHandler creates the buffered generate-script handler.
func NewScriptHandler(client UpstreamClient) *ScriptHandler {
	return &ScriptHandler{upstream: client}
}

// NewScriptStreamHandler creates the streaming generate-script handler.
func NewScriptStreamHandler(client UpstreamClient, collector *metrics.Collector) *ScriptHandler {
	return &ScriptHandler{upstream: client, collector: collector, streaming: true}
}

// ServeHTTP implements http.Handler.
func (h *ScriptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	startTime := time.Now()

	if r.Method != http.MethodPost {
		_ = relay.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed. Use POST.")
		return
	}

	req, err := relay.ParseScriptGenerationRequest(r)
	if err != nil {
		status, envelope := relay.HandleError(err)
		_ = relay.WriteJSON(w, status, envelope)
		return
	}

	payload := scriptGenerationPayload(req)

	if h.streaming {
		relayStream(w, r, h.upstream, h.collector, payload, "/api/generate-script/stream")
		return
	}

	body, err := h.upstream.CreateChatCompletion(ctx, payload)
	if err != nil {
		slog.ErrorContext(ctx, "upstream script generation failed",
			"request_id", requestID,
			"model", req.Model,
			"error", err,
		)
		status, envelope := relay.HandleError(err)
		_ = relay.WriteJSON(w, status, envelope)
		return
	}

	slog.InfoContext(ctx, "script generation relayed",
		"request_id", requestID,
		"model", req.Model,
		"length", *req.Length,
		"intensity", *req.Intensity,
		"max_tokens", payload.MaxTokens,
		"latency_ms", time.Since(startTime).Milliseconds(),
	)

	if err := relay.WriteRawJSON(w, http.StatusOK, body); err != nil {
		slog.ErrorContext(ctx, "failed to write script generation response",
			"request_id", requestID,
			"error", err,
		)
	}
}

// scriptGenerationPayload builds the upstream payload for a script
// generation, deriving the token budget from the requested word length.
func scriptGenerationPayload(req *types.ScriptGenerationRequest) *upstream.ChatPayload {
	system, user := prompt.Script(req.StyleSummary, req.Theme, *req.Length, *req.Intensity)
	return &upstream.ChatPayload{
		Model: req.Model,
		Messages: []upstream.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   prompt.ScriptTokenBudget(*req.Length),
		Temperature: prompt.ScriptTemperature,
	}
}
