// ABOUTME: Prometheus metrics for solve outcomes
// ABOUTME: Counts terminal states and tracks solve wall time

package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fireplan_solve_total",
		Help: "Panel solves by terminal status.",
	}, []string{"status"})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fireplan_solve_duration_seconds",
		Help:    "Wall time of panel solves.",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 14),
	})
)

func observeSolve(status string, elapsed time.Duration) {
	solveTotal.WithLabelValues(status).Inc()
	solveDuration.Observe(elapsed.Seconds())
}
