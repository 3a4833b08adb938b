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

// StyleHandler serves POST /api/analyze-style and
// POST /api/analyze-style/stream. Both variants build the same analysis
// prompt; the streaming one relays the upstream event stream live.
type StyleHandler struct {
	upstream  UpstreamClient
	collector *metrics.Collector
	streaming bool
}

// NewStyleHandler creates the buffered analyze-style handler.
func NewStyleHandler(client UpstreamClient) *StyleHandler {
	return &StyleHandler{upstream: client}
}

// NewStyleStreamHandler creates the streaming analyze-style handler.
func NewStyleStreamHandler(client UpstreamClient, collector *metrics.Collector) *StyleHandler {
	return &StyleHandler{upstream: client, collector: collector, streaming: true}
}

// ServeHTTP implements http.Handler.
func (h *StyleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	startTime := time.Now()

	if r.Method != http.MethodPost {
		_ = relay.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed. Use POST.")
		return
	}

	req, err := relay.ParseStyleAnalysisRequest(r)
	if err != nil {
		status, envelope := relay.HandleError(err)
		_ = relay.WriteJSON(w, status, envelope)
		return
	}

	payload := styleAnalysisPayload(req)

	if h.streaming {
		relayStream(w, r, h.upstream, h.collector, payload, "/api/analyze-style/stream")
		return
	}

	body, err := h.upstream.CreateChatCompletion(ctx, payload)
	if err != nil {
		slog.ErrorContext(ctx, "upstream style analysis failed",
			"request_id", requestID,
			"model", req.Model,
			"error", err,
		)
		status, envelope := relay.HandleError(err)
		_ = relay.WriteJSON(w, status, envelope)
		return
	}

	slog.InfoContext(ctx, "style analysis relayed",
		"request_id", requestID,
		"model", req.Model,
		"samples", len(req.Samples),
		"latency_ms", time.Since(startTime).Milliseconds(),
	)

	if err := relay.WriteRawJSON(w, http.StatusOK, body); err != nil {
		slog.ErrorContext(ctx, "failed to write style analysis response",
			"request_id", requestID,
			"error", err,
		)
	}
}

// styleAnalysisPayload builds the upstream payload for a style analysis.
func styleAnalysisPayload(req *types.StyleAnalysisRequest) *upstream.ChatPayload {
	system, user := prompt.StyleAnalysis(req.Samples)
	return &upstream.ChatPayload{
		Model: req.Model,
		Messages: []upstream.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   prompt.StyleMaxTokens,
		Temperature: prompt.StyleTemperature,
	}
}
