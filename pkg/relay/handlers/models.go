package handlers

import (
	"log/slog"
	"net/http"

	"mesmer-studio/mesmer/pkg/relay"
	"mesmer-studio/mesmer/pkg/relay/middleware"
)

// ModelsHandler serves GET /api/models by passing the upstream model list
// through verbatim.
type ModelsHandler struct {
	upstream UpstreamClient
}

// NewModelsHandler creates a models handler.
func NewModelsHandler(client UpstreamClient) *ModelsHandler {
	return &ModelsHandler{upstream: client}
}

// ServeHTTP implements http.Handler.
func (h *ModelsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		_ = relay.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed. Use GET.")
		return
	}

	body, err := h.upstream.ListModels(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list upstream models",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		status, envelope := relay.HandleError(err)
		_ = relay.WriteJSON(w, status, envelope)
		return
	}

	if err := relay.WriteRawJSON(w, http.StatusOK, body); err != nil {
		slog.ErrorContext(ctx, "failed to write models response", "error", err)
	}
}
