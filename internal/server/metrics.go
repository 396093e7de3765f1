package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// evaluationsTotal counts evaluation requests, partitioned by result.
	evaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "declareforecast_evaluations_total",
		Help: "Total number of evaluation requests",
	}, []string{"status"})

	// evaluationDuration tracks how long a full option sweep takes.
	evaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "declareforecast_evaluation_duration_seconds",
		Help:    "Duration of a full declaration option sweep in seconds",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
	})

	// optionsRanked tracks the number of options produced per evaluation.
	optionsRanked = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "declareforecast_options_ranked",
		Help: "Number of declaration options ranked by the last evaluation",
	})
)

// metricsHandler returns the Prometheus metrics HTTP handler.
func metricsHandler() http.Handler {
	return promhttp.Handler()
}
