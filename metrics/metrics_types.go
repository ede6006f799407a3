// Package metrics exposes Prometheus instrumentation for the branch network.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// namespace prefixes every metric name.
const namespace = "branchnet"

// Insert outcomes used as the status label.
const (
	StatusOK        = "ok"
	StatusDuplicate = "duplicate"
	StatusInvalid   = "invalid"
	StatusPlacement = "placement_exhausted"
	StatusJournal   = "journal_error"
	StatusError     = "error"
)

// Registry holds all metrics for the application
type Registry struct {
	// Network Metrics
	InsertionsTotal   *prometheus.CounterVec
	InsertDuration    prometheus.Histogram
	EdgeWeightKm      prometheus.Histogram
	Branches          prometheus.Gauge
	TreeWeightKm      prometheus.Gauge
	TreeRewiresTotal  prometheus.Counter
	PlacementAttempts prometheus.Histogram

	// HTTP Metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized,
// plus the Go runtime and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Registry{
		registry: reg,
	}

	r.initNetworkMetrics()
	r.initHTTPMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
