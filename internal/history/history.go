package history

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/NexTracker_Go/internal/domain"
	"github.com/osse101/NexTracker_Go/internal/event"
	"github.com/osse101/NexTracker_Go/internal/logger"
)

// Log messages
const (
	LogMsgFightRecorded  = "Fight recorded in history"
	LogMsgFightUpdated   = "Fight history entry updated"
	LogMsgInvalidPayload = "Ignoring event with unexpected payload"
)

// Store keeps recently finished fights in memory with size and age limits
type Store struct {
	// mu serializes read-modify-write updates; the LRU is itself concurrency-safe
	mu  sync.Mutex
	lru *expirable.LRU[string, domain.FightSummary]
}

// NewStore creates a store holding at most size fights for ttl. A zero ttl never expires.
func NewStore(size int, ttl time.Duration) *Store {
	return &Store{
		lru: expirable.NewLRU[string, domain.FightSummary](size, nil, ttl),
	}
}

// Register subscribes the store to fight and signal events
func (s *Store) Register(bus event.Bus) {
	bus.Subscribe(event.FightEnded, s.handleFight)
	bus.Subscribe(event.FightResults, s.handleFight)
	bus.Subscribe(event.SignalMVP, s.handleSignal)
	bus.Subscribe(event.SignalDrop, s.handleSignal)
}

// Put inserts or replaces a fight
func (s *Store) Put(summary domain.FightSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lru.Add(summary.FightID, summary)
}

// Get returns a fight by id
func (s *Store) Get(fightID string) (domain.FightSummary, error) {
	summary, ok := s.lru.Peek(fightID)
	if !ok {
		return domain.FightSummary{}, fmt.Errorf("%w: %s", domain.ErrFightNotFound, fightID)
	}
	return summary, nil
}

// Recent returns up to limit fights, newest first. limit <= 0 returns all.
func (s *Store) Recent(limit int) []domain.FightSummary {
	fights := s.lru.Values()
	slices.SortStableFunc(fights, func(a, b domain.FightSummary) int {
		return b.StartedAt.Compare(a.StartedAt)
	})
	if limit > 0 && len(fights) > limit {
		fights = fights[:limit]
	}
	return fights
}

// Len returns the number of stored fights
func (s *Store) Len() int {
	return s.lru.Len()
}

func (s *Store) handleFight(ctx context.Context, evt event.Event) error {
	summary, err := event.DecodePayload[domain.FightSummary](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.Put(summary)
	logger.FromContext(ctx).Debug(LogMsgFightRecorded, "type", evt.Type, "fight_id", summary.FightID)
	return nil
}

// handleSignal sets the flag on an already recorded fight. Signals for a fight
// still in progress arrive again with the results summary.
func (s *Store) handleSignal(ctx context.Context, evt event.Event) error {
	signal, err := event.DecodePayload[event.SignalPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	summary, ok := s.lru.Peek(signal.FightID)
	if !ok {
		return nil
	}

	switch evt.Type {
	case event.SignalMVP:
		summary.IsMVP = true
	case event.SignalDrop:
		summary.IsEligible = true
	}
	s.lru.Add(summary.FightID, summary)

	logger.FromContext(ctx).Debug(LogMsgFightUpdated, "type", evt.Type, "fight_id", summary.FightID)
	return nil
}
