package metrics

import "github.com/prometheus/client_golang/prometheus"

// Drafting Prometheus metrics.
var (
	ShapeGenerationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arkcutt",
			Name:      "shape_generations_total",
			Help:      "Total number of shape generation requests",
		},
		[]string{"category", "type", "status"},
	)

	VectorizationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arkcutt",
			Name:      "vectorizations_total",
			Help:      "Total number of text vectorization requests",
		},
		[]string{"status"},
	)

	AnalysisEntitiesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arkcutt",
			Name:      "analysis_entities_total",
			Help:      "Total DXF entities processed, by verdict",
		},
		[]string{"verdict"}, // "valid" / "phantom"
	)

	AnalysisCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arkcutt",
			Name:      "analysis_cache_total",
			Help:      "Analysis cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	InterpreterRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arkcutt",
			Name:      "interpreter_requests_total",
			Help:      "Total LLM interpreter requests",
		},
		[]string{"model", "status"},
	)

	InterpreterRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "arkcutt",
			Name:      "interpreter_request_duration_seconds",
			Help:      "LLM interpreter request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"model"},
	)
)

var draftingMetricsRegistered bool

// RegisterDraftingMetrics registers Prometheus drafting metrics. Must be called once from main.
func RegisterDraftingMetrics() {
	if draftingMetricsRegistered {
		return
	}
	prometheus.MustRegister(ShapeGenerationsTotal)
	prometheus.MustRegister(VectorizationsTotal)
	prometheus.MustRegister(AnalysisEntitiesTotal)
	prometheus.MustRegister(AnalysisCacheTotal)
	prometheus.MustRegister(InterpreterRequestsTotal)
	prometheus.MustRegister(InterpreterRequestDuration)
	draftingMetricsRegistered = true
}
