package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recommendation engine and store guard metrics.
var (
	RecommendationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "soartv",
			Name:      "recommendation_duration_seconds",
			Help:      "Time to assemble one recommendation response",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	RecommendationCandidates = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "soartv",
			Name:      "recommendation_candidates",
			Help:      "Candidates scored per request",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		},
		[]string{"kind"}, // "user" / "project"
	)

	RecommendationResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "soartv",
			Name:      "recommendation_results",
			Help:      "Recommendations returned per request after threshold and cap",
			Buckets:   []float64{0, 1, 2, 4, 8, 12},
		},
		[]string{"kind"},
	)

	RecommendationsEmptyTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "soartv",
			Name:      "recommendations_empty_total",
			Help:      "Requests answered with both lists empty",
		},
		[]string{"reason"}, // "no_profile" / "store_unavailable" / "no_match"
	)

	StoreFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "soartv",
			Name:      "store_fallbacks_total",
			Help:      "Guarded calls that failed and returned their fallback value",
		},
		[]string{"guard", "op"},
	)

	CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "soartv",
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"guard"},
	)
)

var recMetricsRegistered bool

// RegisterRecommendationMetrics registers engine and guard metrics. Must be called once from main.
func RegisterRecommendationMetrics() {
	if recMetricsRegistered {
		return
	}
	prometheus.MustRegister(RecommendationDuration)
	prometheus.MustRegister(RecommendationCandidates)
	prometheus.MustRegister(RecommendationResults)
	prometheus.MustRegister(RecommendationsEmptyTotal)
	prometheus.MustRegister(StoreFallbacksTotal)
	prometheus.MustRegister(CircuitBreakerState)
	recMetricsRegistered = true
}
