// Package metrics defines the Prometheus instruments exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by method, path, and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coderelay_http_requests_total",
		Help: "HTTP requests handled.",
	}, []string{"method", "path", "status"})

	// HTTPDuration observes request latency by path.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "coderelay_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// Turns counts completed agent turns by outcome.
	Turns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coderelay_agent_turns_total",
		Help: "Agent turns processed.",
	}, []string{"outcome"})

	// TurnDuration observes end-to-end turn latency.
	TurnDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "coderelay_agent_turn_duration_seconds",
		Help:    "Agent turn latency, user message to final answer.",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	})

	// ToolExecutions counts tool runs by tool and result.
	ToolExecutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coderelay_tool_executions_total",
		Help: "Tool executions by tool name and result.",
	}, []string{"tool", "result"})

	// IndexRuns counts indexing runs by outcome.
	IndexRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coderelay_index_runs_total",
		Help: "Repository indexing runs.",
	}, []string{"outcome"})
)
