package session

import (
	"context"
	"errors"
	"io"
	"log"
	"sync/atomic"
	"time"

	"cobra-chase/game"
	"cobra-chase/game/manager"

	"github.com/google/uuid"
)

var (
	// ErrClosed is returned by Send once Run has returned
	ErrClosed = errors.New("session: closed")
	// ErrRunning is returned by a second concurrent call to Run
	ErrRunning = errors.New("session: already running")
)

// RenderFunc receives every new snapshot, on the session goroutine
type RenderFunc func(game.State)

// DelayFunc maps cobra length to the wait before the next tick
type DelayFunc func(length int) time.Duration

// Recorder is told about every finished game
type Recorder interface {
	AddGame(sessionID string, score int, start, end time.Time)
}

// Session runs one game: a single goroutine owns the state, applies queued
// player events and advances the cobra on a timer while the game runs.
type Session struct {
	id       uuid.UUID
	game     *game.Game
	holder   *manager.StateManager[game.State]
	events   chan game.Event
	done     chan struct{}
	running  atomic.Bool
	render   RenderFunc
	delay    DelayFunc
	recorder Recorder
	logger   *log.Logger
	now      func() time.Time

	startTime time.Time
}

type Option func(*Session)

func WithRender(fn RenderFunc) Option {
	return func(s *Session) { s.render = fn }
}

func WithDelay(fn DelayFunc) Option {
	return func(s *Session) { s.delay = fn }
}

func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithState replaces the freshly reset initial state
func WithState(st game.State) Option {
	return func(s *Session) { s.holder.Replace(st) }
}

func New(g *game.Game, opts ...Option) *Session {
	s := &Session{
		id:     uuid.New(),
		game:   g,
		holder: manager.NewStateManager(g.Reset()),
		events: make(chan game.Event, 16),
		done:   make(chan struct{}),
		delay:  game.TickDelay,
		logger: log.New(io.Discard, "", 0),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string {
	return s.id.String()
}

// Snapshot returns the current state. Safe from any goroutine.
func (s *Session) Snapshot() game.State {
	return s.holder.Snapshot()
}

// Send queues an event for the session goroutine
func (s *Session) Send(ctx context.Context, ev game.Event) error {
	select {
	case <-s.done:
		return ErrClosed
	default:
	}
	select {
	case s.events <- ev:
		return nil
	case <-s.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when Run returns
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Run processes events and ticks until ctx is cancelled
func (s *Session) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer close(s.done)

	var (
		timer *time.Timer
		tick  <-chan time.Time
	)
	disarm := func() {
		if timer != nil {
			timer.Stop()
			timer, tick = nil, nil
		}
	}
	defer disarm()

	// at most one pending tick, armed only while the game runs
	schedule := func(st game.State) {
		if !st.Running() {
			disarm()
			return
		}
		if timer == nil {
			timer = time.NewTimer(s.delay(st.Cobra.Len()))
			tick = timer.C
		}
	}

	initial := s.holder.Snapshot()
	s.publish(initial)
	if initial.Running() {
		s.startTime = s.now()
	}
	schedule(initial)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-s.events:
			prev, next := s.holder.Update(func(st game.State) game.State {
				return s.game.Apply(st, ev)
			})
			s.observe(prev, next, ev)
			schedule(next)

		case <-tick:
			timer, tick = nil, nil
			prev, next := s.holder.Update(s.game.Advance)
			s.observe(prev, next, nil)
			schedule(next)
		}
	}
}

func (s *Session) observe(prev, next game.State, ev game.Event) {
	switch ev.(type) {
	case game.StartGame:
		if s.startTime.IsZero() {
			s.startTime = s.now()
		}
	case game.ResetGame:
		s.startTime = time.Time{}
	}

	s.publish(next)

	if !prev.Over && next.Over {
		end := s.now()
		start := s.startTime
		if start.IsZero() {
			start = end
		}
		s.logger.Printf("session %s: game over, score %d after %s", s.id, next.Score(), end.Sub(start).Round(time.Millisecond))
		if s.recorder != nil {
			s.recorder.AddGame(s.id.String(), next.Score(), start, end)
		}
	}
}

func (s *Session) publish(st game.State) {
	if s.render != nil {
		s.render(st)
	}
}
