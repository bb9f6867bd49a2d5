package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// simulationsTotal counts simulation requests by outcome
	// (ok / invalid_config / failed).
	simulationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plantsim_simulations_total",
		Help: "The total number of simulation requests handled",
	}, []string{"outcome"})

	// simulationDuration observes wall-clock time spent per comparison run,
	// all policy runs included.
	simulationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "plantsim_simulation_duration_seconds",
		Help:    "Wall-clock duration of full policy comparisons",
		Buckets: prometheus.DefBuckets,
	})
)
