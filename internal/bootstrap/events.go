package bootstrap

import (
	"log/slog"

	"github.com/osse101/NexTracker_Go/internal/event"
	"github.com/osse101/NexTracker_Go/internal/sse"
)

// InitializeEventSystem creates the event bus and the SSE hub, and bridges
// fight events from one to the other. The hub is started; stop it on shutdown.
func InitializeEventSystem() (*event.MemoryBus, *sse.Hub) {
	bus := event.NewMemoryBus()

	hub := sse.NewHub()
	hub.Start()

	sse.NewSubscriber(hub, bus).Subscribe()

	slog.Info(LogMsgEventSystemInitialized)

	return bus, hub
}
