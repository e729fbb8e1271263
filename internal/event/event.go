package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/osse101/NexTracker_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Fight lifecycle event types
const (
	FightStarted Type = domain.EventTypeFightStarted
	FightEnded   Type = domain.EventTypeFightEnded
	FightResults Type = domain.EventTypeFightResults
	FightCleared Type = domain.EventTypeFightCleared
	SignalMVP    Type = domain.EventTypeSignalMVP
	SignalDrop   Type = domain.EventTypeSignalDrop
)

// FightTypes lists every fight lifecycle event type, in lifecycle order
var FightTypes = []Type{FightStarted, FightEnded, FightResults, FightCleared}

// SignalPayloadV1 is the typed payload for chat signal events
type SignalPayloadV1 struct {
	FightID string `json:"fight_id,omitempty"` // Empty when no fight has been tracked yet
	Signal  string `json:"signal"`
	Text    string `json:"text"`
}

// NewFightEvent creates a fight lifecycle event carrying the fight summary
func NewFightEvent(eventType Type, summary domain.FightSummary) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: summary,
		Metadata: Metadata{
			MetadataKeyFightID: summary.FightID,
		},
	}
}

// NewSignalEvent creates a chat signal event for the given fight
func NewSignalEvent(eventType Type, fightID, text string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: SignalPayloadV1{
			FightID: fightID,
			Signal:  string(eventType),
			Text:    text,
		},
		Metadata: Metadata{
			MetadataKeyFightID: fightID,
		},
	}
}

// DecodePayload decodes an event payload into T via type assertion then JSON fallback.
// Events published on the MemoryBus already carry the concrete struct.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously on the caller's goroutine, in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
