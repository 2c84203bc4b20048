// Package metrics provides centralized Prometheus metrics for the
// Medium MCP server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Tool metrics track MCP tool invocations.
var (
	// ToolCallsTotal counts tool invocations by tool and status
	// (success, rejected, error).
	ToolCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mcp_tool_calls_total",
			Help: "Total number of MCP tool invocations",
		},
		[]string{"tool", "status"},
	)

	// ToolCallDuration measures tool invocation duration in seconds.
	ToolCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mcp_tool_call_duration_seconds",
			Help:    "MCP tool invocation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"tool"},
	)
)

// Upstream metrics track requests against the Medium API.
var (
	// UpstreamRequestsTotal counts upstream requests by endpoint and
	// result (HTTP status code, or "error" for transport failures).
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medium_upstream_requests_total",
			Help: "Total number of upstream Medium API requests",
		},
		[]string{"endpoint", "result"},
	)

	// UpstreamRequestDuration measures upstream request duration in seconds.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "medium_upstream_request_duration_seconds",
			Help:    "Upstream Medium API request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"endpoint"},
	)
)

// RecordToolCall records one tool invocation with its outcome.
func RecordToolCall(tool, status string, duration time.Duration) {
	ToolCallsTotal.WithLabelValues(tool, status).Inc()
	ToolCallDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// RecordUpstreamRequest records one upstream API request.
func RecordUpstreamRequest(endpoint, result string, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(endpoint, result).Inc()
	UpstreamRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}
