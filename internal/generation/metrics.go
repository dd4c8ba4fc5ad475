package generation

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workoutgen_generations_total",
			Help: "Total number of generated plans by source and reason.",
		},
		[]string{"source", "reason"},
	)
	generationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "workoutgen_generation_duration_seconds",
			Help:    "End-to-end duration of plan generation.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)
	fallbackCategory = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workoutgen_fallback_category_total",
			Help: "Fallback plans served by category.",
		},
		[]string{"category"},
	)
)

func observe(source Source, reason string, start time.Time) {
	generationsTotal.WithLabelValues(string(source), reason).Inc()
	generationDuration.WithLabelValues(string(source)).Observe(time.Since(start).Seconds())
}
