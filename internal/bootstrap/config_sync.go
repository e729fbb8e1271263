package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/NexTracker_Go/internal/config"
	"github.com/osse101/NexTracker_Go/internal/domain"
	"github.com/osse101/NexTracker_Go/internal/session"
)

// LoadTrackerSettings reads the settings file into a store. A missing file
// yields the defaults; an invalid one is a startup error.
func LoadTrackerSettings(path string) (*config.SettingsStore, error) {
	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadSettings, err)
	}

	slog.Info(LogMsgSettingsLoaded,
		"path", path,
		"show_overlay", settings.ShowOverlay,
		"attribution_mode", settings.AttributionMode)

	return config.NewSettingsStore(settings), nil
}

// WatchTrackerSettings starts reloading the settings file on change and
// forwards each changed key to the session as a config message. It returns
// nil when the file cannot be watched; the tracker keeps its startup settings.
func WatchTrackerSettings(ctx context.Context, path string, store *config.SettingsStore, sess *session.Session) *config.Watcher {
	if err := os.MkdirAll(filepath.Dir(path), DirPermission); err != nil {
		slog.Warn(LogMsgSettingsWatchDisabled, "path", path, "error", fmt.Errorf("%s: %w", ErrMsgFailedCreateConfigDir, err))
		return nil
	}

	watcher, err := config.NewWatcher(path, store)
	if err != nil {
		slog.Warn(LogMsgSettingsWatchDisabled, "path", path, "error", err)
		return nil
	}

	go func() {
		err := watcher.Run(ctx, func(ctx context.Context, change domain.ConfigChangeEvent) error {
			return sess.Submit(ctx, session.ConfigMsg{Event: change})
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			slog.Warn(LogMsgSettingsWatchStopped, "error", err)
			return
		}
		slog.Debug(LogMsgSettingsWatchStopped)
	}()

	slog.Info(LogMsgSettingsWatchStarted, "path", path)
	return watcher
}
