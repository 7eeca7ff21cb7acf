// Package metrics holds the Prometheus collectors of the document server.
//
// Collectors are registered on a private registry rather than the global
// one so that tests can build as many instances as they need.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sealdoc"

// Label values for [Collectors.DocumentsCreated].
const (
	FlowPlaintext = "plaintext"
	FlowEncrypted = "encrypted"
)

// Label values for result labels.
const (
	ResultOK           = "ok"
	ResultDeduplicated = "deduplicated"
	ResultRejected     = "rejected"
	ResultNotFound     = "not_found"
	ResultAuthFailure  = "auth_failure"
	ResultError        = "error"
)

// Collectors bundles every metric exported by the server.
type Collectors struct {
	// HTTPRequests counts requests by method, route pattern and status.
	HTTPRequests *prometheus.CounterVec

	// HTTPDuration observes request latency by method and route pattern.
	HTTPDuration *prometheus.HistogramVec

	// DocumentsCreated counts create outcomes by flow and result.
	DocumentsCreated *prometheus.CounterVec

	// Decrypts counts server-side decrypt outcomes.
	Decrypts *prometheus.CounterVec

	// PurgeRuns counts purge invocations by result.
	PurgeRuns *prometheus.CounterVec

	// DocumentsPurged counts removed documents.
	DocumentsPurged prometheus.Counter

	// PurgeDuration observes how long a purge takes.
	PurgeDuration prometheus.Histogram

	registry *prometheus.Registry
}

// New returns collectors registered on a fresh registry that also exports
// Go runtime and process metrics.
func New() *Collectors {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg)
}

// NewWithRegistry registers the collectors on reg.
func NewWithRegistry(reg *prometheus.Registry) *Collectors {
	factory := promauto.With(reg)

	return &Collectors{
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		DocumentsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "documents_created_total",
				Help:      "Document create requests by flow and result.",
			},
			[]string{"flow", "result"},
		),
		Decrypts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "decrypts_total",
				Help:      "Server-side decrypt requests by result.",
			},
			[]string{"result"},
		),
		PurgeRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "purge_runs_total",
				Help:      "Purge invocations by result.",
			},
			[]string{"result"},
		),
		DocumentsPurged: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_purged_total",
			Help:      "Expired documents removed by purge.",
		}),
		PurgeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "purge_duration_seconds",
			Help:      "Purge duration in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		}),
		registry: reg,
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collectors) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
