package metrics

import (
	"context"

	"github.com/osse101/NexTracker_Go/internal/domain"
	"github.com/osse101/NexTracker_Go/internal/event"
	"github.com/osse101/NexTracker_Go/internal/logger"
)

// Fight outcome label values
const (
	OutcomeMVP      = "mvp"
	OutcomeEligible = "eligible"
	OutcomeNone     = "none"
)

// EventMetricsCollector subscribes to tracker events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all tracker events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := append([]event.Type{}, event.FightTypes...)
	eventTypes = append(eventTypes, event.SignalMVP, event.SignalDrop)

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.SignalMVP, event.SignalDrop:
		ChatSignals.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
		return nil
	}

	summary, err := event.DecodePayload[domain.FightSummary](evt.Payload)
	if err != nil {
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	switch evt.Type {
	case event.FightStarted:
		FightsStarted.Inc()
		TrackerPhase.Set(PhaseValueActive)

	case event.FightEnded:
		TrackerPhase.Set(PhaseValueCooldown)
		FightDamage.WithLabelValues(SourceOwn).Add(float64(summary.OwnDamage))
		FightDamage.WithLabelValues(SourceTotal).Add(float64(summary.TotalDamage))
		FightDuration.Observe(float64(summary.Ticks))

	case event.FightResults:
		FightsCompleted.WithLabelValues(outcome(summary)).Inc()

	case event.FightCleared:
		TrackerPhase.Set(PhaseValueIdle)
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func outcome(s domain.FightSummary) string {
	switch {
	case s.IsMVP:
		return OutcomeMVP
	case s.IsEligible:
		return OutcomeEligible
	default:
		return OutcomeNone
	}
}
