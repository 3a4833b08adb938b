package middleware

import (
	"net/http"
	"strings"
	"time"

	"mesmer-studio/mesmer/pkg/telemetry/metrics"
)

// Metrics records per-route request counts and latencies. A nil collector
// disables instrumentation without changing the chain.
func Metrics(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if collector == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			rw := newResponseWriter(w)

			next.ServeHTTP(rw, r)

			collector.RecordRequest(routeLabel(r.URL.Path), r.Method, rw.statusCode, time.Since(startTime))
		})
	}
}

// routeLabel keeps label cardinality bounded: API routes are labeled by
// path, everything else collapses into the static fallback.
func routeLabel(path string) string {
	if strings.HasPrefix(path, "/api/") {
		return path
	}
	return "static"
}
