package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"mesmer-studio/mesmer/pkg/relay"
	"mesmer-studio/mesmer/pkg/relay/middleware"
	"mesmer-studio/mesmer/pkg/telemetry/metrics"
	"mesmer-studio/mesmer/pkg/upstream"
)

// relayStream pipes an upstream streaming completion to the client as a
// live event stream.
//
// The response is committed to event-stream mode and flushed before the
// upstream call, so the client sees an open connection immediately. If the
// upstream call then fails to establish, the error envelope is delivered as
// an SSE data event — the stream's own framing is the only channel left at
// that point. Once established, upstream bytes are copied to the client
// verbatim, in arrival order, without buffering or reframing; the upstream
// is trusted to emit valid SSE framing. The upstream request runs under the
// client's request context, so a client disconnect aborts it promptly.
func relayStream(w http.ResponseWriter, r *http.Request, client UpstreamClient, collector *metrics.Collector, payload *upstream.ChatPayload, route string) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	relay.SetSSEHeaders(w)
	flusher, canFlush := w.(http.Flusher)
	if canFlush {
		flusher.Flush()
	}

	body, err := client.StreamChatCompletion(ctx, payload)
	if err != nil {
		slog.ErrorContext(ctx, "upstream stream failed to establish",
			"request_id", requestID,
			"route", route,
			"model", payload.Model,
			"error", err,
		)
		_, envelope := relay.HandleError(err)
		if werr := relay.WriteSSEError(w, envelope.Message); werr != nil {
			slog.ErrorContext(ctx, "failed to write SSE error", "error", werr)
		}
		return
	}
	defer body.Close()

	buf := make([]byte, 32*1024)
	chunks := 0
	relayed := 0

	for {
		n, rerr := body.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				// Client went away mid-write; the deferred close plus the
				// request context abort the upstream side.
				slog.DebugContext(ctx, "client write failed during stream",
					"request_id", requestID,
					"route", route,
					"error", werr,
				)
				return
			}
			if canFlush {
				flusher.Flush()
			}
			chunks++
			relayed += n
			collector.RecordStreamChunk(route, n)
		}

		if rerr != nil {
			switch {
			case errors.Is(rerr, io.EOF):
				slog.InfoContext(ctx, "stream completed",
					"request_id", requestID,
					"route", route,
					"model", payload.Model,
					"chunks", chunks,
					"bytes", relayed,
				)
			case ctx.Err() != nil:
				slog.InfoContext(ctx, "client disconnected during stream",
					"request_id", requestID,
					"route", route,
					"chunks", chunks,
					"bytes", relayed,
				)
			default:
				slog.ErrorContext(ctx, "upstream read failed during stream",
					"request_id", requestID,
					"route", route,
					"error", rerr,
				)
				_ = relay.WriteSSEError(w, "Stream interrupted")
			}
			return
		}
	}
}
