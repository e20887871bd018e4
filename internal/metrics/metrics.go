// Package metrics exposes Prometheus collectors for the RoomEase process.
// Collectors live on a private registry so tests can build as many as they
// like.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/roomease/internal/calculator"
)

const namespace = "roomease"

// Metrics holds all Prometheus metrics
type Metrics struct {
	Registry *prometheus.Registry

	// RPC metrics
	RPCCalls    *prometheus.CounterVec
	RPCDuration *prometheus.HistogramVec

	// Persistence metrics
	PersistWrites *prometheus.CounterVec

	// Reminder metrics
	RemindersSent prometheus.Counter
}

// New creates and registers the process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		RPCCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rpc_calls_total",
				Help:      "Total number of RPC calls by procedure and code",
			},
			[]string{"procedure", "code"},
		),
		RPCDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rpc_duration_seconds",
				Help:      "RPC handling duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
			},
			[]string{"procedure"},
		),
		PersistWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "persist_writes_total",
				Help:      "Collection writes to the local store by result",
			},
			[]string{"collection", "result"},
		),
		RemindersSent: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reminders_sent_total",
				Help:      "Scheduled reminders delivered",
			},
		),
	}

	reg.MustRegister(
		m.RPCCalls,
		m.RPCDuration,
		m.PersistWrites,
		m.RemindersSent,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// PersistResult implements storage.ResultRecorder.
func (m *Metrics) PersistResult(collection string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.PersistWrites.WithLabelValues(collection, result).Inc()
}

// RegisterSummary exports the household aggregates as gauges. summary is
// called on every scrape.
func (m *Metrics) RegisterSummary(summary func() calculator.Summary) {
	gauge := func(name, help string, value func(calculator.Summary) float64) prometheus.Collector {
		return prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help},
			func() float64 { return value(summary()) },
		)
	}
	m.Registry.MustRegister(
		gauge("total_spent_rupees", "Sum of all expense amounts",
			func(s calculator.Summary) float64 { return s.TotalSpent.InexactFloat64() }),
		gauge("user_owes_rupees", "What the primary user owes roommates",
			func(s calculator.Summary) float64 { return s.UserOwes.InexactFloat64() }),
		gauge("user_is_owed_rupees", "What roommates owe the primary user",
			func(s calculator.Summary) float64 { return s.UserIsOwed.InexactFloat64() }),
		gauge("utility_due_rupees", "Primary user's outstanding utility share",
			func(s calculator.Summary) float64 { return s.TotalUtilityDue.InexactFloat64() }),
	)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
