package server

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/zergmon/internal/metrics"
)

// Metrics tracks HTTP traffic of the exporter itself.
type Metrics struct {
	requests *prometheus.CounterVec
	active   prometheus.Gauge
	handler  http.Handler
}

// NewMetrics registers the HTTP collectors next to the exporter's metrics and
// scrapes through the exporter's handler. A nil exp gets a fresh exporter.
func NewMetrics(exp *metrics.Exporter) *Metrics {
	if exp == nil {
		exp = metrics.NewExporter()
	}
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served by the exporter.",
		}, []string{"path", "code"}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metrics.Namespace,
			Name:      "http_active_requests",
			Help:      "HTTP requests currently being served.",
		}),
	}
	exp.Registry().MustRegister(m.requests, m.active)
	m.handler = exp.Handler()
	return m
}

// IncrementActiveRequests marks a request as in flight.
func (m *Metrics) IncrementActiveRequests() { m.active.Inc() }

// DecrementActiveRequests marks a request as finished.
func (m *Metrics) DecrementActiveRequests() { m.active.Dec() }

// ObserveRequest counts a finished request.
func (m *Metrics) ObserveRequest(path string, code int) {
	m.requests.WithLabelValues(path, strconv.Itoa(code)).Inc()
}

// WritePrometheus serves the exporter registry in the Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}
