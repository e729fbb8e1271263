package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/NexTracker_Go/internal/config"
	"github.com/osse101/NexTracker_Go/internal/server"
	"github.com/osse101/NexTracker_Go/internal/sse"
	"github.com/osse101/NexTracker_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Optional components may be nil.
type ShutdownComponents struct {
	Server *server.Server

	// StopSession cancels the session loop; SessionDone closes once it has
	// detached the overlay and returned
	StopSession func()
	SessionDone <-chan struct{}

	Watcher    *config.Watcher
	NotifyPool *worker.Pool
	Hub        *sse.Hub
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting ingest)
// 2. Session loop (tracker shuts down, overlay detached)
// 3. Settings watcher, notification pool, SSE hub
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.StopSession != nil {
		slog.Info(LogMsgShuttingDownSession)
		components.StopSession()
		waitSession(ctx, components.SessionDone)
	}

	if components.Watcher != nil {
		if err := components.Watcher.Close(); err != nil {
			slog.Error(LogMsgWatcherCloseFailed, "error", err)
		}
	}

	// Pending Discord sends are abandoned; their retries observe the pool context
	if components.NotifyPool != nil {
		components.NotifyPool.Stop()
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	slog.Info(LogMsgServerStopped)
}

func waitSession(ctx context.Context, done <-chan struct{}) {
	if done == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, SessionStopTimeout)
	defer cancel()

	select {
	case <-done:
	case <-ctx.Done():
		slog.Warn(LogMsgSessionStopTimeout)
	}
}
