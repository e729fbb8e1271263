package session

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/NexTracker_Go/internal/domain"
	"github.com/osse101/NexTracker_Go/internal/logger"
	"github.com/osse101/NexTracker_Go/internal/metrics"
	"github.com/osse101/NexTracker_Go/internal/tracker"
	"github.com/osse101/NexTracker_Go/internal/world"
)

// Config controls how the session advances ticks
type Config struct {
	TickInterval time.Duration
	// ExternalTicks disables the internal ticker; ticks then only come from TickMsg
	ExternalTicks bool
}

// Session serializes every tracker input onto one goroutine
type Session struct {
	tracker *tracker.Tracker
	world   *world.State
	cfg     Config

	inbox chan Message
	done  chan struct{}

	mu    sync.RWMutex
	state tracker.State
	ticks uint64
}

// New creates a session around a tracker and the world it observes
func New(t *tracker.Tracker, w *world.State, cfg Config) *Session {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	return &Session{
		tracker: t,
		world:   w,
		cfg:     cfg,
		inbox:   make(chan Message, InboxSize),
		done:    make(chan struct{}),
		state:   t.State(),
	}
}

// Run processes messages until ctx is cancelled, then shuts the tracker down.
// It must be called once.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.done)

	log := logger.FromContext(ctx)
	log.Info(LogMsgSessionStarted,
		"tick_interval", s.cfg.TickInterval,
		"external_ticks", s.cfg.ExternalTicks)

	var tickC <-chan time.Time
	if !s.cfg.ExternalTicks {
		ticker := time.NewTicker(s.cfg.TickInterval)
		defer ticker.Stop()
		tickC = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			// Shutdown runs detached so its own logging is not tied to a cancelled ctx
			s.tracker.Shutdown(context.WithoutCancel(ctx))
			s.publishState()
			log.Info(LogMsgSessionStopped, "ticks", s.Ticks())
			return nil

		case msg := <-s.inbox:
			s.apply(ctx, msg)

		case <-tickC:
			s.drain(ctx)
			s.tick(ctx)
		}
	}
}

// Submit queues a message for the loop. It blocks while the inbox is full.
func (s *Session) Submit(ctx context.Context, msg Message) error {
	select {
	case <-s.done:
		return domain.ErrSessionStopped
	default:
	}

	select {
	case s.inbox <- msg:
		return nil
	case <-s.done:
		return domain.ErrSessionStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns the tracker state as of the last processed message
func (s *Session) State() tracker.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Ticks returns how many ticks the tracker has evaluated
func (s *Session) Ticks() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ticks
}

// Done is closed once Run has returned
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// drain applies everything already queued so that the tick sees all events of its window
func (s *Session) drain(ctx context.Context) {
	for {
		select {
		case msg := <-s.inbox:
			s.apply(ctx, msg)
		default:
			return
		}
	}
}

func (s *Session) apply(ctx context.Context, msg Message) {
	switch m := msg.(type) {
	case WorldMsg:
		s.world.Apply(m.Update)
	case DamageMsg:
		s.tracker.OnDamage(ctx, m.Event)
	case ChatMsg:
		s.tracker.OnChat(ctx, m.Event)
	case ConfigMsg:
		s.tracker.OnConfigChange(ctx, m.Event)
	case TickMsg:
		if !s.cfg.ExternalTicks {
			logger.FromContext(ctx).Debug(LogMsgExternalTickIgnored)
			return
		}
		s.tick(ctx)
		return
	default:
		logger.FromContext(ctx).Warn(LogMsgUnknownMessage, "error", domain.ErrUnknownMessage)
		return
	}

	metrics.SessionMessages.WithLabelValues(msg.Kind()).Inc()
	s.publishState()
}

func (s *Session) tick(ctx context.Context) {
	s.tracker.OnTick(ctx)
	metrics.SessionMessages.WithLabelValues(KindTick).Inc()
	metrics.SessionTicks.Inc()

	s.mu.Lock()
	s.ticks++
	s.state = s.tracker.State()
	s.mu.Unlock()
}

func (s *Session) publishState() {
	st := s.tracker.State()
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// CheckHealth reports ErrSessionStopped once the loop has exited
func (s *Session) CheckHealth(_ context.Context) error {
	select {
	case <-s.done:
		return domain.ErrSessionStopped
	default:
		return nil
	}
}
