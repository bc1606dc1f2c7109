package generator

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	aiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backroom_generator_ai_requests_total",
			Help: "Total number of requests to the generative AI API.",
		},
		[]string{"operation", "model", "status"},
	)
	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backroom_generator_ai_request_duration_seconds",
			Help:    "Histogram of generative AI API request durations.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"operation", "model"},
	)
)

// observe records the outcome of a single upstream call
func observe(operation, model, status string, started time.Time) {
	aiRequestsTotal.WithLabelValues(operation, model, status).Inc()
	aiRequestDuration.WithLabelValues(operation, model).Observe(time.Since(started).Seconds())
}
