package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for the application.
// Each collector owns its registry, so tests can build as many as they need.
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// gRPC metrics
	GRPCRequests *prometheus.CounterVec
	GRPCDuration *prometheus.HistogramVec

	// Dataset metrics
	Terms         prometheus.Gauge
	DanglingLinks prometheus.Gauge
}

// NewCollector creates a new metrics collector with Go runtime and process
// collectors registered alongside the application metrics
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		GRPCRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "grpc_requests_total",
				Help: "Total number of unary gRPC calls",
			},
			[]string{"method", "code"},
		),
		GRPCDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "grpc_request_duration_seconds",
				Help:    "Unary gRPC call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		Terms: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "glossary_terms",
			Help: "Number of terms in the loaded dataset",
		}),
		DanglingLinks: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "glossary_dangling_links",
			Help: "Number of links whose target is not in the dataset",
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.HTTPRequests,
		c.HTTPDuration,
		c.GRPCRequests,
		c.GRPCDuration,
		c.Terms,
		c.DanglingLinks,
	)

	return c
}

// ObserveHTTP records one completed HTTP request
func (c *Collector) ObserveHTTP(method, route string, status int, duration time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveGRPC records one completed unary call
func (c *Collector) ObserveGRPC(method, code string, duration time.Duration) {
	c.GRPCRequests.WithLabelValues(method, code).Inc()
	c.GRPCDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// SetDataset publishes the size of the loaded dataset
func (c *Collector) SetDataset(terms, danglingLinks int) {
	c.Terms.Set(float64(terms))
	c.DanglingLinks.Set(float64(danglingLinks))
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
