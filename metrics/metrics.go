package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// All Record methods accept a nil receiver so callers can leave metrics unwired.

// RecordInsert records one insertion attempt with its outcome
func (r *Registry) RecordInsert(status string, duration time.Duration) {
	if r == nil {
		return
	}
	r.InsertionsTotal.WithLabelValues(status).Inc()
	r.InsertDuration.Observe(duration.Seconds())
}

// RecordEdge records an accepted attachment link
func (r *Registry) RecordEdge(weightKm float64, rewires int) {
	if r == nil {
		return
	}
	r.EdgeWeightKm.Observe(weightKm)
	if rewires > 0 {
		r.TreeRewiresTotal.Add(float64(rewires))
	}
}

// SetTree updates the tree size gauges
func (r *Registry) SetTree(branches int, totalKm float64) {
	if r == nil {
		return
	}
	r.Branches.Set(float64(branches))
	r.TreeWeightKm.Set(totalKm)
}

// RecordPlacement records how many candidates a placement drew
func (r *Registry) RecordPlacement(attempts int) {
	if r == nil {
		return
	}
	r.PlacementAttempts.Observe(float64(attempts))
}

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	if r == nil {
		return
	}
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
