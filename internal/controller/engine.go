package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	domain "github.com/oshokin/emergency-button/internal/domain/activation"
	"github.com/oshokin/emergency-button/internal/logger"
)

// Config parameterizes the engine. Timing values are deployment decisions;
// none of them is baked into the transition logic.
type Config struct {
	// ConfirmWindow is how long a tap or confirmation stays valid.
	ConfirmWindow time.Duration
	// CancelGrace is how long Cancelled is shown before reverting to Idle.
	CancelGrace time.Duration
	// PulsePeriod is the idle heartbeat interval.
	PulsePeriod time.Duration
	// EventBufferSize is the per-observer event buffer depth.
	EventBufferSize int
	// BackupRequired forbids skipping the backup step when true.
	BackupRequired bool
}

// Option configures engine behaviour.
type Option func(*Engine)

// WithMetrics attaches Prometheus instrumentation to the engine.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithPulseHandler registers the callback invoked on every idle heartbeat.
// Intended for local UI surfaces (touch strip idle animation).
func WithPulseHandler(handler func(time.Time)) Option {
	return func(e *Engine) {
		e.pulseHandler = handler
	}
}

// ErrClosed is returned by Trigger after the engine has been closed.
var ErrClosed = errors.New("engine is closed")

// Engine owns the canonical activation phase and serializes every transition.
type Engine struct {
	// mu guards phase, seq, timers and the closed flag. Every transition is
	// a single critical section: consult the table, swap the phase, rearm
	// timers, publish.
	mu sync.Mutex

	// rules is the pure transition table with its parameterization.
	rules domain.Rules
	// cancelGrace is the Cancelled-to-Idle delay.
	cancelGrace time.Duration
	// pulsePeriod is the idle heartbeat interval.
	pulsePeriod time.Duration

	// phase is the canonical phase value, the only shared mutable resource.
	phase domain.Phase
	// seq counts accepted transitions; it doubles as the timer generation.
	seq uint64
	// closed marks the engine as shut down.
	closed bool

	// countdown is the single-shot timer driving confirm timeouts and the
	// cancel grace delay. Nil when nothing is scheduled.
	countdown *time.Timer
	// pulseTimer drives the idle heartbeat. Nil when the phase is not Idle.
	pulseTimer *time.Timer

	// bus fans accepted transitions out to subscribers.
	bus *bus

	// pulseHandler is invoked on every idle heartbeat. May be nil.
	pulseHandler func(time.Time)
	// metrics is optional Prometheus instrumentation. May be nil.
	metrics *Metrics
	// now is the engine clock, replaceable in tests.
	now func() time.Time
}

// New creates an engine in the Idle phase and starts the idle heartbeat.
func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		rules: domain.Rules{
			ConfirmWindow:  cfg.ConfirmWindow,
			BackupRequired: cfg.BackupRequired,
		},
		cancelGrace: cfg.CancelGrace,
		pulsePeriod: cfg.PulsePeriod,
		bus:         newBus(cfg.EventBufferSize),
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.phase = domain.Idle(e.now())
	e.schedulePulse()
	e.observePhase()

	return e
}

// Trigger attempts to advance the state machine on an external stimulus.
// On acceptance it returns the new canonical phase; an invalid combination
// returns the unchanged phase and a *activation.RejectionError.
func (e *Engine) Trigger(ctx context.Context, trigger domain.Trigger, reason string) (domain.Phase, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.applyLocked(ctx, trigger, reason)
}

// CurrentPhase returns a consistent snapshot of the canonical phase.
// Safe to call concurrently with Trigger.
func (e *Engine) CurrentPhase() domain.Phase {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.phase
}

// Reset forces Idle regardless of the current phase, cancelling any pending
// timers. Used by cancel-all paths and tests.
func (e *Engine) Reset(ctx context.Context) domain.Phase {
	e.mu.Lock()
	defer e.mu.Unlock()

	phase, err := e.applyLocked(ctx, domain.TriggerReset, "")
	if err != nil {
		// Reset is valid from every phase; the only rejection source is a
		// closed engine, in which case the last phase stands.
		return phase
	}

	return phase
}

// Subscribe registers an observer and returns its subscription handle.
func (e *Engine) Subscribe() *Subscription {
	return e.bus.subscribe()
}

// Unsubscribe removes the observer. After it returns, no further events are
// delivered and the subscription channel is closed.
func (e *Engine) Unsubscribe(sub *Subscription) {
	e.bus.unsubscribe(sub)
}

// Close stops all timers and closes every subscription channel. Subsequent
// triggers are rejected with ErrClosed.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	e.closed = true
	e.stopCountdownLocked()
	e.stopPulseLocked()
	e.bus.close()
}

// applyLocked is the single atomic check-table-and-set. Callers hold e.mu.
func (e *Engine) applyLocked(ctx context.Context, trigger domain.Trigger, reason string) (domain.Phase, error) {
	if e.closed {
		return e.phase, ErrClosed
	}

	now := e.now()

	next, err := e.rules.Next(e.phase, trigger, now, reason)
	if err != nil {
		e.metrics.observeRejection(trigger)
		logger.DebugKV(ctx, "Trigger rejected",
			"trigger", trigger.String(), "phase", e.phase.Kind.String())

		return e.phase, err
	}

	from := e.phase
	e.phase = next
	e.seq++

	record := domain.Transition{
		Seq:       e.seq,
		From:      from,
		To:        next,
		Trigger:   trigger,
		Timestamp: now,
	}

	e.rearmTimersLocked(next)

	if dropped := e.bus.publish(record); dropped > 0 {
		e.metrics.observeDrops(dropped)
	}

	e.metrics.observeTransition(trigger)
	e.observePhase()
	logger.InfoKV(ctx, "Phase transition",
		"seq", record.Seq,
		"from", from.Kind.String(),
		"to", next.Kind.String(),
		"trigger", trigger.String())

	return next, nil
}

// rearmTimersLocked cancels superseded timers and schedules the ones the new
// phase needs. Callers hold e.mu.
func (e *Engine) rearmTimersLocked(next domain.Phase) {
	e.stopCountdownLocked()

	switch next.Kind {
	case domain.PhaseIdle:
		e.schedulePulse()
	case domain.PhaseArmed, domain.PhaseConfirming:
		e.stopPulseLocked()
		e.scheduleCountdown(e.rules.ConfirmWindow, domain.TriggerConfirmTimeout)
	case domain.PhaseCancelled:
		e.stopPulseLocked()
		e.scheduleCountdown(e.cancelGrace, domain.TriggerCancelGraceElapsed)
	default:
		e.stopPulseLocked()
	}
}

// scheduleCountdown arms the single-shot timer. The callback carries the
// generation it was scheduled in; a fired timer whose generation no longer
// matches is stale and is dropped without consulting the table.
func (e *Engine) scheduleCountdown(after time.Duration, trigger domain.Trigger) {
	gen := e.seq

	e.countdown = time.AfterFunc(after, func() {
		e.timerFired(gen, trigger)
	})
}

// timerFired is the entry point for countdown callbacks: fire-then-check.
func (e *Engine) timerFired(gen uint64, trigger domain.Trigger) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.seq != gen {
		// A transition beat the timer; its effect is already void.
		e.metrics.observeStaleTimer()

		return
	}

	// Generation matches, so the table accepts by construction. A rejection
	// here would mean a timer scheduled for a phase that cannot consume it,
	// which rearmTimersLocked never does.
	_, _ = e.applyLocked(context.Background(), trigger, "")
}

// stopCountdownLocked cancels the pending countdown, if any. Idempotent and
// safe after the timer already fired: the generation check voids the callback.
func (e *Engine) stopCountdownLocked() {
	if e.countdown == nil {
		return
	}

	e.countdown.Stop()
	e.countdown = nil
}

// schedulePulse arms the idle heartbeat. Callers hold e.mu.
func (e *Engine) schedulePulse() {
	if e.pulsePeriod <= 0 || e.pulseTimer != nil {
		return
	}

	e.pulseTimer = time.AfterFunc(e.pulsePeriod, e.pulseFired)
}

// pulseFired reschedules itself only while the phase is still Idle, so the
// heartbeat self-terminates the moment the phase changes and resumes when the
// engine returns to Idle.
func (e *Engine) pulseFired() {
	e.mu.Lock()

	if e.closed || e.pulseTimer == nil || !e.phase.Is(domain.PhaseIdle) {
		e.mu.Unlock()

		return
	}

	handler := e.pulseHandler
	now := e.now()

	e.pulseTimer.Reset(e.pulsePeriod)
	e.mu.Unlock()

	// Invoke outside the lock: a slow handler must not stall triggers.
	if handler != nil {
		handler(now)
	}
}

// stopPulseLocked halts the idle heartbeat. Callers hold e.mu.
func (e *Engine) stopPulseLocked() {
	if e.pulseTimer == nil {
		return
	}

	e.pulseTimer.Stop()
	e.pulseTimer = nil
}

// observePhase exports the current phase kind to metrics. Callers hold e.mu.
func (e *Engine) observePhase() {
	e.metrics.observePhase(e.phase.Kind)
}
