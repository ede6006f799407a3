package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initNetworkMetrics() {
	r.InsertionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "insertions_total",
			Help:      "Total number of branch insertions by outcome",
		},
		[]string{"status"},
	)

	r.InsertDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "insert_duration_seconds",
			Help:      "Duration of a branch insertion including placement and journaling",
			Buckets:   []float64{.00005, .0001, .0005, .001, .005, .01, .05, .1, .5},
		},
	)

	r.EdgeWeightKm = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "edge_weight_km",
			Help:      "Length of accepted attachment links in kilometres",
			Buckets:   []float64{5, 10, 25, 50, 100, 200, 400, 800},
		},
	)

	r.Branches = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "branches",
			Help:      "Number of connected branches",
		},
	)

	r.TreeWeightKm = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tree_weight_km",
			Help:      "Total length of the spanning tree in kilometres",
		},
	)

	r.TreeRewiresTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tree_rewires_total",
			Help:      "Total number of tree links replaced by shorter links through a new branch",
		},
	)

	r.PlacementAttempts = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "placement_attempts",
			Help:      "Candidates drawn per placement",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 7),
		},
	)
}
