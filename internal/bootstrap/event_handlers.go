package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/NexTracker_Go/internal/config"
	"github.com/osse101/NexTracker_Go/internal/discord"
	"github.com/osse101/NexTracker_Go/internal/event"
	"github.com/osse101/NexTracker_Go/internal/history"
	"github.com/osse101/NexTracker_Go/internal/metrics"
	"github.com/osse101/NexTracker_Go/internal/worker"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	History  *history.Store
	Notifier *discord.Notifier
}

// RegisterEventHandlers sets up all bus subscribers:
// - Metrics collector (fight and signal counters)
// - Fight history (recent fights for the query API)
// - Discord notifier (results embeds, when configured)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	deps.History.Register(deps.EventBus)
	slog.Info(LogMsgHistoryRegistered)

	deps.Notifier.Register(deps.EventBus)

	return nil
}

// InitializeNotifier builds the Discord notifier and the worker pool its sends
// run on. Without Discord credentials the notifier is disabled and the pool is nil.
func InitializeNotifier(cfg *config.Config) (*discord.Notifier, *worker.Pool, error) {
	if !cfg.DiscordEnabled() {
		return discord.NewNotifier(nil, "", nil), nil, nil
	}

	session, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDiscordSession, err)
	}

	pool := worker.NewPool(cfg.NotifyWorkers, NotifyQueueSize)
	pool.Start()

	return discord.NewNotifier(session, cfg.DiscordChannelID, pool), pool, nil
}
