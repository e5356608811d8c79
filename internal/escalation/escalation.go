// Package escalation implements the combined phone-call + alarm side effect
// triggered when a confirmed anomaly crosses the criticality bar.
package escalation

import (
	"context"
	"log/slog"
	"sync"
)

// Dialer places the outbound emergency call. Fire-and-forget: the call is
// never retried.
type Dialer interface {
	Dial(ctx context.Context, number, reason string) error
}

// Siren controls the continuous audible alarm.
type Siren interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Escalator coordinates one escalation episode at a time. An episode opens
// on the inactive-to-active transition and closes on Silence or Close.
// Triggering while an episode is open is a no-op: the alarm keeps sounding
// and the emergency number is not re-dialed.
type Escalator struct {
	dialer Dialer
	siren  Siren
	number string
	logger *slog.Logger

	mu     sync.Mutex
	active bool
}

// New creates an Escalator dialing the given emergency number.
func New(dialer Dialer, siren Siren, number string, logger *slog.Logger) *Escalator {
	return &Escalator{
		dialer: dialer,
		siren:  siren,
		number: number,
		logger: logger,
	}
}

// Trigger opens an escalation episode: place the emergency call and start
// the alarm. A siren failure is logged only; the call has already been
// placed and must not be blocked by the audio subsystem.
func (e *Escalator) Trigger(ctx context.Context, reason string) {
	e.mu.Lock()
	if e.active {
		e.mu.Unlock()
		return
	}
	e.active = true
	e.mu.Unlock()

	e.logger.Info("escalation triggered",
		slog.String("reason", reason),
		slog.String("number", e.number),
	)

	if err := e.dialer.Dial(ctx, e.number, reason); err != nil {
		e.logger.Error("emergency call failed",
			slog.String("number", e.number),
			slog.Any("error", err),
		)
	}

	if err := e.siren.Start(ctx); err != nil {
		e.logger.Warn("alarm could not be started",
			slog.Any("error", err),
		)
	}
}

// Silence stops the alarm and closes the episode. Safe to call when no
// episode is open.
func (e *Escalator) Silence(ctx context.Context) {
	e.mu.Lock()
	wasActive := e.active
	e.active = false
	e.mu.Unlock()

	if !wasActive {
		return
	}

	if err := e.siren.Stop(ctx); err != nil {
		e.logger.Warn("alarm could not be stopped",
			slog.Any("error", err),
		)
	}
	e.logger.Info("alarm silenced")
}

// Active reports whether an escalation episode is open.
func (e *Escalator) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// Close releases the alarm resource. Called on server teardown so the siren
// never outlives the session.
func (e *Escalator) Close() {
	e.Silence(context.Background())
}
