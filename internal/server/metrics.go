package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registered once on the default registry; Metrics instances share them.
var (
	requestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hostmon_requests_total",
		Help: "Total number of snapshot requests served.",
	})
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hostmon_active_requests",
		Help: "Number of snapshot requests currently in flight.",
	})
	samplerCyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hostmon_sampler_cycles_total",
		Help: "Total number of completed CPU sampling cycles.",
	})
	samplerErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hostmon_sampler_errors_total",
		Help: "Total number of failed CPU sampling cycles.",
	})
)

// Metrics exposes Prometheus instrumentation for the snapshot service.
type Metrics struct {
	handler http.Handler
}

func NewMetrics() *Metrics {
	return &Metrics{handler: promhttp.Handler()}
}

func (m *Metrics) IncrementRequests()       { requestsTotal.Inc() }
func (m *Metrics) IncrementActiveRequests() { activeRequests.Inc() }
func (m *Metrics) DecrementActiveRequests() { activeRequests.Dec() }

// ObserveSamplerCycle records the outcome of one collector cycle.
func (m *Metrics) ObserveSamplerCycle(failed bool) {
	samplerCyclesTotal.Inc()
	if failed {
		samplerErrorsTotal.Inc()
	}
}

// WritePrometheus serves the text exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// Instrument wraps a handler with request counting.
func (m *Metrics) Instrument(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.IncrementActiveRequests()
		defer m.DecrementActiveRequests()
		next(w, r)
		m.IncrementRequests()
	}
}
