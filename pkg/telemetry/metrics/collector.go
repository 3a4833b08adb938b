// Package metrics exposes Prometheus instrumentation for the relay:
// per-route request counts and latencies, and streamed chunk/byte totals.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Collector owns the Prometheus registry and all relay metrics.
type Collector struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	streamChunks    *prometheus.CounterVec
	streamBytes     *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry and registers the
// relay metrics plus the standard Go and process collectors.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of relay requests processed",
			},
			[]string{"route", "method", "status"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Duration of relay requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),

		streamChunks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stream_chunks_total",
				Help:      "Total upstream chunks relayed to clients",
			},
			[]string{"route"},
		),

		streamBytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stream_bytes_total",
				Help:      "Total upstream bytes relayed to clients",
			},
			[]string{"route"},
		),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.requestsTotal,
		c.requestDuration,
		c.streamChunks,
		c.streamBytes,
	)

	return c
}

// RecordRequest records a completed request.
func (c *Collector) RecordRequest(route, method string, status int, duration time.Duration) {
	if c == nil {
		return
	}
	c.requestsTotal.WithLabelValues(route, method, statusLabel(status)).Inc()
	c.requestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordStreamChunk records one relayed chunk and its size.
func (c *Collector) RecordStreamChunk(route string, bytes int) {
	if c == nil {
		return
	}
	c.streamChunks.WithLabelValues(route).Inc()
	c.streamBytes.WithLabelValues(route).Add(float64(bytes))
}

// statusLabel buckets status codes into their class ("2xx", "4xx", ...),
// keeping label cardinality low.
func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
