package controller

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	domain "github.com/oshokin/emergency-button/internal/domain/activation"
)

// Metrics exports engine counters to Prometheus. All engine-side hooks are
// nil-safe so instrumentation stays optional.
type Metrics struct {
	// transitionsAccepted counts accepted transitions per trigger.
	transitionsAccepted *prometheus.CounterVec
	// transitionsRejected counts rejected triggers per trigger.
	transitionsRejected *prometheus.CounterVec
	// staleTimers counts timer callbacks voided by the generation check.
	staleTimers prometheus.Counter
	// eventsDropped counts bus events discarded due to full observer buffers.
	eventsDropped prometheus.Counter
	// currentPhase holds 1 for the canonical phase kind, 0 for the rest.
	currentPhase *prometheus.GaugeVec
}

// phaseKinds enumerates every kind for the phase gauge.
var phaseKinds = []domain.PhaseKind{
	domain.PhaseIdle,
	domain.PhaseArmed,
	domain.PhaseConfirming,
	domain.PhaseBackupPrompt,
	domain.PhaseLockingDown,
	domain.PhaseRunning,
	domain.PhaseCancelled,
}

// NewMetrics registers the engine collectors on the provided registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		transitionsAccepted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emergency",
			Subsystem: "activation",
			Name:      "transitions_accepted_total",
			Help:      "Accepted phase transitions by trigger.",
		}, []string{"trigger"}),
		transitionsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emergency",
			Subsystem: "activation",
			Name:      "transitions_rejected_total",
			Help:      "Rejected triggers by trigger.",
		}, []string{"trigger"}),
		staleTimers: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "emergency",
			Subsystem: "activation",
			Name:      "stale_timer_fires_total",
			Help:      "Timer callbacks voided because the phase moved on first.",
		}),
		eventsDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "emergency",
			Subsystem: "activation",
			Name:      "observer_events_dropped_total",
			Help:      "Bus events dropped because an observer buffer was full.",
		}),
		currentPhase: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "emergency",
			Subsystem: "activation",
			Name:      "current_phase",
			Help:      "1 for the canonical phase kind, 0 otherwise.",
		}, []string{"phase"}),
	}
}

// observeTransition records an accepted transition.
func (m *Metrics) observeTransition(trigger domain.Trigger) {
	if m == nil {
		return
	}

	m.transitionsAccepted.WithLabelValues(trigger.String()).Inc()
}

// observeRejection records a rejected trigger.
func (m *Metrics) observeRejection(trigger domain.Trigger) {
	if m == nil {
		return
	}

	m.transitionsRejected.WithLabelValues(trigger.String()).Inc()
}

// observeStaleTimer records a voided timer callback.
func (m *Metrics) observeStaleTimer() {
	if m == nil {
		return
	}

	m.staleTimers.Inc()
}

// observeDrops records bus events discarded during one publish.
func (m *Metrics) observeDrops(count uint64) {
	if m == nil {
		return
	}

	m.eventsDropped.Add(float64(count))
}

// observePhase exports the canonical phase kind.
func (m *Metrics) observePhase(kind domain.PhaseKind) {
	if m == nil {
		return
	}

	for _, k := range phaseKinds {
		value := 0.0
		if k == kind {
			value = 1.0
		}

		m.currentPhase.WithLabelValues(k.String()).Set(value)
	}
}
