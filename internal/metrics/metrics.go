// Package metrics exposes Prometheus instrumentation for the scan
// orchestration pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/drishti-ops/drishti/internal/domain"
	"github.com/drishti-ops/drishti/internal/store"
)

// Metrics holds the collectors the service updates at runtime.
type Metrics struct {
	registry *prometheus.Registry

	ScansTotal      *prometheus.CounterVec
	AlertsTotal     *prometheus.CounterVec
	GatewayDuration *prometheus.HistogramVec
	SweepZoneCalls  prometheus.Counter
	AlarmActive     prometheus.Gauge
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		ScansTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "drishti_scans_total",
			Help: "Zone anomaly scans by zone and outcome.",
		}, []string{"zone", "outcome"}),
		AlertsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "drishti_alerts_total",
			Help: "Alerts appended to the log by severity.",
		}, []string{"severity"}),
		GatewayDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "drishti_gateway_request_duration_seconds",
			Help:    "Latency of analysis gateway calls by capability.",
			Buckets: prometheus.DefBuckets,
		}, []string{"capability"}),
		SweepZoneCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "drishti_sweep_zone_calls_total",
			Help: "Gateway calls made by face-match sweeps.",
		}),
		AlarmActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "drishti_alarm_active",
			Help: "Whether the audible alarm is currently sounding.",
		}),
	}

	registry.MustRegister(
		m.ScansTotal,
		m.AlertsTotal,
		m.GatewayDuration,
		m.SweepZoneCalls,
		m.AlarmActive,
	)
	return m
}

// Registry returns the registry backing the /metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveGateway records one gateway call's duration.
func (m *Metrics) ObserveGateway(capability string, d time.Duration) {
	m.GatewayDuration.WithLabelValues(capability).Observe(d.Seconds())
}

// StoreListener returns a store listener keeping alert counters current.
func (m *Metrics) StoreListener() store.Listener {
	return func(e store.Event) {
		if e.Type != store.EventAlertCreated {
			return
		}
		if alert, ok := e.Data.(domain.Alert); ok {
			m.AlertsTotal.WithLabelValues(string(alert.Severity)).Inc()
		}
	}
}
