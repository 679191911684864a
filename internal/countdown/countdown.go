// Package countdown derives the time left until an auction closes.
//
// Remaining is a pure function of the close timestamp and a sampled "now".
// Engine samples it on a fixed interval with a single rescheduled timer and
// stops for good once the auction is closed.
package countdown

import (
	"context"
	"sync"
	"time"

	"bidding-client/utils"

	"github.com/jonboulle/clockwork"
)

// DefaultInterval is how often the engine recomputes the remaining time.
const DefaultInterval = time.Second

// State is the remaining time until close, decomposed into whole units.
// Decomposed fields are only meaningful when the state is neither pending nor closed.
type State struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
	Closed  bool
	Pending bool
}

// Pending is the state reported while no close timestamp is known.
func Pending() State {
	return State{Pending: true}
}

// TotalSeconds reconstructs the truncated remaining second count
func (s State) TotalSeconds() int64 {
	return s.Days*86400 + s.Hours*3600 + s.Minutes*60 + s.Seconds
}

// Remaining computes the countdown for closeAt as seen at now.
// The auction is closed once now reaches closeAt; a positive remainder shorter
// than a second is still open and decomposes to all zeros.
func Remaining(closeAt, now time.Time) State {
	d := closeAt.Sub(now)
	if d <= 0 {
		return State{Closed: true}
	}

	total := int64(d / time.Second)
	return State{
		Days:    total / 86400,
		Hours:   total % 86400 / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}
}

// CloseTimeSource supplies the authoritative close timestamp, when one is known.
type CloseTimeSource interface {
	CloseTime() (time.Time, bool)
}

// Option configures an Engine
type Option func(*Engine)

// WithClock sets the clock used to sample "now" and schedule ticks
func WithClock(clock clockwork.Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithInterval sets the tick period
func WithInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

// WithOnTick registers a callback invoked with every recomputed state
func WithOnTick(fn func(State)) Option {
	return func(e *Engine) { e.onTick = fn }
}

// Engine recomputes the countdown on a fixed schedule.
type Engine struct {
	source   CloseTimeSource
	clock    clockwork.Clock
	interval time.Duration
	onTick   func(State)

	mu    sync.RWMutex
	state State
}

// NewEngine creates an engine reading close timestamps from source
func NewEngine(source CloseTimeSource, opts ...Option) *Engine {
	e := &Engine{
		source:   source,
		clock:    clockwork.NewRealClock(),
		interval: DefaultInterval,
		state:    Pending(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the most recently computed state
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Closed reports whether the engine reached its terminal state
func (e *Engine) Closed() bool {
	return e.State().Closed
}

// Run recomputes immediately and then once per interval until ctx is done or the auction closes.
// At most one tick timer is pending at any time.
func (e *Engine) Run(ctx context.Context) error {
	if e.tick() {
		return nil
	}

	timer := e.clock.NewTimer(e.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.Chan():
			if e.tick() {
				utils.Info("countdown: auction closed", nil)
				return nil
			}
			timer.Reset(e.interval)
		}
	}
}

// tick recomputes the state and reports whether it is terminal.
func (e *Engine) tick() bool {
	e.mu.Lock()
	if e.state.Closed {
		e.mu.Unlock()
		return true
	}

	next := Pending()
	if closeAt, ok := e.source.CloseTime(); ok {
		next = Remaining(closeAt, e.clock.Now())
	}
	e.state = next
	e.mu.Unlock()

	if e.onTick != nil {
		e.onTick(next)
	}
	return next.Closed
}
