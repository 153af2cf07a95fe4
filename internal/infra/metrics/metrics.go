// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what handlers and the propagation worker record into.
type Recorder interface {
	RecordHTTPRequest(service, method, route string, status int, duration time.Duration)
	RecordPropagation(outcome string)
	RecordPropagationLatency(duration time.Duration)
}

type Collector struct {
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	propagation        *prometheus.CounterVec
	propagationLatency prometheus.Histogram
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scrap_http_requests_total",
			Help: "HTTP requests by service, route and status code",
		}, []string{"service", "method", "route", "status_code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scrap_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		propagation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scrap_propagation_attempts_total",
			Help: "Ledger status pushes by outcome",
		}, []string{"outcome"}),
		propagationLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scrap_propagation_latency_seconds",
			Help:    "Latency of a single Ledger status push in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.propagation,
		c.propagationLatency,
	)

	return c
}

func (c *Collector) RecordHTTPRequest(service, method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(service, method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(service, method, route).Observe(duration.Seconds())
}

// RecordPropagation counts one push by outcome: delivered, retry or dead.
func (c *Collector) RecordPropagation(outcome string) {
	c.propagation.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordPropagationLatency(duration time.Duration) {
	c.propagationLatency.Observe(duration.Seconds())
}

// Handler serves the registry for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
