// Package metrics exposes Prometheus instrumentation for the scoring server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kohle"

// Metrics holds every collector on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	turnsResolved   prometheus.Counter
	turnEvents      *prometheus.CounterVec
	pflichtOutcomes *prometheus.CounterVec
	teamsCreated    prometheus.Counter
	teamsEnded      prometheus.Counter
	playersAdded    prometheus.Counter
	playersRemoved  prometheus.Counter
	storageErrors   *prometheus.CounterVec
	panics          prometheus.Counter
	httpRequests    *prometheus.HistogramVec
}

// New creates a Metrics instance with Go runtime and process collectors registered
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		turnsResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_resolved_total",
			Help:      "Turns resolved, including skipped turns.",
		}),
		turnEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turn_events_total",
			Help:      "Turn events selected, by event.",
		}, []string{"event"}),
		pflichtOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pflicht_outcomes_total",
			Help:      "Recorded mandatory attempt outcomes.",
		}, []string{"outcome"}),
		teamsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "teams_created_total",
			Help:      "Teams created.",
		}),
		teamsEnded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "teams_ended_total",
			Help:      "Teams ended.",
		}),
		playersAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "players_added_total",
			Help:      "Players added to a roster.",
		}),
		playersRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "players_removed_total",
			Help:      "Players removed from a roster.",
		}),
		storageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_errors_total",
			Help:      "Storage failures, by operation.",
		}, []string{"op"}),
		panics: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_panics_recovered_total",
			Help:      "Handler panics turned into error responses.",
		}),
		httpRequests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.turnsResolved,
		m.turnEvents,
		m.pflichtOutcomes,
		m.teamsCreated,
		m.teamsEnded,
		m.playersAdded,
		m.playersRemoved,
		m.storageErrors,
		m.panics,
		m.httpRequests,
	)
	return m
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// TurnResolved records one resolved turn and each selected event
func (m *Metrics) TurnResolved(events []string) {
	if m == nil {
		return
	}
	m.turnsResolved.Inc()
	for _, e := range events {
		m.turnEvents.WithLabelValues(e).Inc()
	}
}

func (m *Metrics) PflichtRecorded(outcome string) {
	if m == nil {
		return
	}
	m.pflichtOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) TeamCreated() {
	if m == nil {
		return
	}
	m.teamsCreated.Inc()
}

func (m *Metrics) TeamEnded() {
	if m == nil {
		return
	}
	m.teamsEnded.Inc()
}

func (m *Metrics) PlayerAdded() {
	if m == nil {
		return
	}
	m.playersAdded.Inc()
}

func (m *Metrics) PlayerRemoved() {
	if m == nil {
		return
	}
	m.playersRemoved.Inc()
}

// StorageError records a failed load or save
func (m *Metrics) StorageError(op string) {
	if m == nil {
		return
	}
	m.storageErrors.WithLabelValues(op).Inc()
}

// PanicRecovered records a recovered handler panic
func (m *Metrics) PanicRecovered() {
	if m == nil {
		return
	}
	m.panics.Inc()
}

// ObserveHTTP records the latency of one request
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
