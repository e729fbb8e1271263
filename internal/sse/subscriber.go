package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/NexTracker_Go/internal/domain"
	"github.com/osse101/NexTracker_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for fight lifecycle and chat signal events
func (s *Subscriber) Subscribe() {
	types := make([]string, 0, len(event.FightTypes)+2)

	for _, t := range event.FightTypes {
		s.bus.Subscribe(t, s.handleFight)
		types = append(types, string(t))
	}
	for _, t := range []event.Type{event.SignalMVP, event.SignalDrop} {
		s.bus.Subscribe(t, s.handleSignal)
		types = append(types, string(t))
	}

	slog.Info(LogMsgSubscriberReady, "types", types)
}

func (s *Subscriber) handleFight(_ context.Context, evt event.Event) error {
	summary, err := event.DecodePayload[domain.FightSummary](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	payload := NewFightPayload(summary)
	s.hub.Broadcast(string(evt.Type), payload)

	slog.Debug(LogMsgEventBroadcast,
		"event_type", evt.Type,
		"fight_id", payload.FightID)

	return nil
}

func (s *Subscriber) handleSignal(_ context.Context, evt event.Event) error {
	signal, err := event.DecodePayload[event.SignalPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(string(evt.Type), SignalPayload{
		FightID: signal.FightID,
		Text:    signal.Text,
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", evt.Type,
		"fight_id", signal.FightID)

	return nil
}
