package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordsmith_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// GenerateDuration tracks upstream generation latency per model and mode.
	GenerateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wordsmith_generate_duration_seconds",
		Help:    "Time spent waiting on the text generation backend.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"model", "mode"})

	// InputChars tracks the distribution of input text lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordsmith_input_chars",
		Help:    "Number of characters in suggestion input text.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})

	// Suggestions tracks how many suggestions survive normalisation.
	Suggestions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wordsmith_suggestions",
		Help:    "Number of suggestions returned per request.",
		Buckets: []float64{1, 2, 3, 4, 5},
	}, []string{"mode"})

	// UpstreamErrors counts failed generation calls and empty outputs.
	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordsmith_upstream_errors_total",
		Help: "Generation calls that failed or produced no usable text.",
	}, []string{"model"})

	// AdapterAvailable tracks whether each adapter is reachable.
	AdapterAvailable = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "wordsmith_adapter_available",
		Help: "Whether an LLM adapter is available (1) or not (0).",
	}, []string{"adapter"})
)
