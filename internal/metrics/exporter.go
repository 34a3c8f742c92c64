// Package metrics publishes sampler output as Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/zergmon/internal/sysmon"
)

// Namespace prefixes every metric exported by zergmon.
const Namespace = "zergmon"

// Exporter holds the gauges fed by each Snapshot and remembers the latest
// Snapshot and Identity for the JSON endpoint. It is safe for concurrent use:
// the dashboard or sampler loop writes while HTTP handlers read.
type Exporter struct {
	registry *prometheus.Registry

	cpuOverall  prometheus.Gauge
	cpuCore     *prometheus.GaugeVec
	memTotal    prometheus.Gauge
	memUsed     prometheus.Gauge
	hostInfo    *prometheus.GaugeVec
	refreshes   prometheus.Counter
	unavailable *prometheus.CounterVec

	mu       sync.RWMutex
	latest   sysmon.Snapshot
	identity sysmon.Identity
	observed bool
	cores    int // per-core series currently exported
}

// NewExporter creates an exporter on its own registry, with the Go runtime
// and process collectors attached.
func NewExporter() *Exporter {
	reg := prometheus.NewRegistry()
	e := &Exporter{
		registry: reg,
		cpuOverall: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "cpu_usage_percent",
			Help:      "Mean CPU utilization across all cores.",
		}),
		cpuCore: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "cpu_core_usage_percent",
			Help:      "CPU utilization per core.",
		}, []string{"core"}),
		memTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "memory_total_bytes",
			Help:      "Total physical memory.",
		}),
		memUsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "memory_used_bytes",
			Help:      "Used physical memory.",
		}),
		hostInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "host_info",
			Help:      "Host identity; always 1.",
		}, []string{"name", "kernel", "hostname", "os_version"}),
		refreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "refresh_total",
			Help:      "Number of sampler refresh passes observed.",
		}),
		unavailable: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "metric_unavailable_total",
			Help:      "Refresh passes in which a metric could not be read.",
		}, []string{"metric"}),
	}
	reg.MustRegister(
		e.cpuOverall, e.cpuCore, e.memTotal, e.memUsed,
		e.hostInfo, e.refreshes, e.unavailable,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return e
}

// Registry returns the registry the exporter's metrics live in, so other
// components (the HTTP server) can register their own collectors next to them.
func (e *Exporter) Registry() *prometheus.Registry { return e.registry }

// Handler returns the Prometheus scrape handler for the exporter's registry.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{Registry: e.registry})
}

// Observe publishes a snapshot.
func (e *Exporter) Observe(snap sysmon.Snapshot) {
	e.refreshes.Inc()
	for _, m := range snap.Unavailable {
		e.unavailable.WithLabelValues(m).Inc()
	}

	e.cpuOverall.Set(snap.Overall)
	e.memTotal.Set(float64(snap.TotalMemory))
	e.memUsed.Set(float64(snap.UsedMemory))

	e.mu.Lock()
	defer e.mu.Unlock()

	for i, pct := range snap.PerCore {
		e.cpuCore.WithLabelValues(strconv.Itoa(i)).Set(pct)
	}
	// Drop series only for cores that went away (e.g. CPU hotplug).
	for i := len(snap.PerCore); i < e.cores; i++ {
		e.cpuCore.DeleteLabelValues(strconv.Itoa(i))
	}
	e.cores = len(snap.PerCore)
	e.latest = snap
	e.observed = true
}

// SetIdentity publishes the host identity as an info metric.
func (e *Exporter) SetIdentity(id sysmon.Identity) {
	e.hostInfo.Reset()
	e.hostInfo.WithLabelValues(
		id.Name.String(), id.KernelVersion.String(), id.HostName.String(), id.OSVersion.String(),
	).Set(1)

	e.mu.Lock()
	e.identity = id
	e.mu.Unlock()
}

// Latest returns the last observed snapshot and identity. ok is false until
// the first Observe.
func (e *Exporter) Latest() (snap sysmon.Snapshot, id sysmon.Identity, ok bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.latest, e.identity, e.observed
}
