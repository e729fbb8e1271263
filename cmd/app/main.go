package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/NexTracker_Go/internal/bootstrap"
	"github.com/osse101/NexTracker_Go/internal/config"
	"github.com/osse101/NexTracker_Go/internal/display"
	"github.com/osse101/NexTracker_Go/internal/handler"
	"github.com/osse101/NexTracker_Go/internal/history"
	"github.com/osse101/NexTracker_Go/internal/server"
	"github.com/osse101/NexTracker_Go/internal/session"
	"github.com/osse101/NexTracker_Go/internal/tracker"
	"github.com/osse101/NexTracker_Go/internal/world"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to setup logger", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus, hub := bootstrap.InitializeEventSystem()

	settings, err := bootstrap.LoadTrackerSettings(cfg.SettingsPath)
	if err != nil {
		slog.Error("Failed to load tracker settings", "error", err)
		os.Exit(1)
	}

	// Each surface keeps its latest snapshot for polling and streams it to SSE clients
	panel := display.NewLatest()
	overlay := display.NewLatest()
	host := display.NewHost(hub)

	w := world.NewState()
	t := tracker.New(tracker.Deps{
		World:   w,
		Panel:   display.Fanout{panel, display.NewBroadcast(hub, display.SurfacePanel)},
		Overlay: display.Fanout{overlay, display.NewBroadcast(hub, display.SurfaceOverlay)},
		Host:    host,
		Config:  settings,
		Bus:     bus,
		Mode:    settings.AttributionMode(),
	})

	sess := session.New(t, w, session.Config{
		TickInterval:  cfg.TickInterval,
		ExternalTicks: cfg.ExternalTicks(),
	})

	fights := history.NewStore(cfg.HistorySize, cfg.HistoryTTL)
	notifier, notifyPool, err := bootstrap.InitializeNotifier(cfg)
	if err != nil {
		slog.Error("Failed to initialize Discord notifier", "error", err)
		os.Exit(1)
	}

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		History:  fights,
		Notifier: notifier,
	}); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	sessionCtx, stopSession := context.WithCancel(context.Background())
	go func() {
		if err := sess.Run(sessionCtx); err != nil {
			slog.Error("Tracker session failed", "error", err)
		}
	}()

	watcher := bootstrap.WatchTrackerSettings(ctx, cfg.SettingsPath, settings, sess)

	srv := server.NewServer(server.Deps{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
		Ingest:         handler.NewIngestHandler(sess, settings),
		Query:          handler.NewQueryHandler(panel, overlay, sess, fights),
		Health:         sess,
		Hub:            hub,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:      srv,
		StopSession: stopSession,
		SessionDone: sess.Done(),
		Watcher:     watcher,
		NotifyPool:  notifyPool,
		Hub:         hub,
	})
}
