// Package metrics provides Prometheus metrics collection for the tabib API.
// It exports HTTP request metrics plus assistant-specific metrics:
//   - http_request_total: Counter with method, path, and status labels
//   - http_request_duration_seconds: Histogram with method and path labels
//   - http_request_in_flight: Gauge for concurrent requests
//   - model_calls_total: Counter with phase and status labels
//   - tool_calls_total: Counter for search tool invocations
//   - search_results_returned: Histogram of result counts per search
//
// All metrics are automatically registered with the Prometheus default
// registry during package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	ModelCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_calls_total",
			Help: "Model capability calls by protocol phase and outcome",
		},
		[]string{"phase", "status"},
	)

	ToolCallsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tool_calls_total",
			Help: "Medicine search tool invocations requested by the model",
		},
	)

	SearchResultsReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_results_returned",
			Help:    "Number of medicines returned per tool search",
			Buckets: []float64{0, 1, 2, 5, 10, 20},
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(ModelCallsTotal)
	prometheus.MustRegister(ToolCallsTotal)
	prometheus.MustRegister(SearchResultsReturned)
}
