package relay

import (
	"encoding/json"
	"fmt"
	"net/http"

	"mesmer-studio/mesmer/pkg/relay/types"
)

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON response: %w", err)
	}
	return nil
}

// WriteRawJSON writes an upstream JSON body verbatim. The relay never
// rewrites upstream payloads.
func WriteRawJSON(w http.ResponseWriter, statusCode int, body json.RawMessage) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// WriteError writes the uniform error envelope with the given status code.
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, types.NewErrorResponse(message))
}

// SetSSEHeaders marks the response as a persistent event stream. Callers
// must flush immediately afterwards so the client sees an open connection
// before any body bytes arrive.
func SetSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
}

// WriteSSEError writes the error envelope as an SSE data event. It is the
// only way to report a failure once the response has been committed to
// event-stream mode; the frame stays inside the stream's own framing so the
// connection is never left corrupt.
func WriteSSEError(w http.ResponseWriter, message string) error {
	data, err := json.Marshal(types.NewErrorResponse(message))
	if err != nil {
		return fmt.Errorf("failed to marshal SSE error: %w", err)
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		return fmt.Errorf("failed to write SSE error: %w", err)
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}
