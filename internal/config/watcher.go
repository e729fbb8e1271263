package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/osse101/NexTracker_Go/internal/domain"
	"github.com/osse101/NexTracker_Go/internal/logger"
)

// ChangeSink receives settings changes, typically by submitting them to the session
type ChangeSink func(ctx context.Context, change domain.ConfigChangeEvent) error

// Watcher reloads the settings file when it changes on disk
type Watcher struct {
	path     string
	store    *SettingsStore
	watcher  *fsnotify.Watcher
	debounce time.Duration
	once     sync.Once
}

// NewWatcher watches the directory holding path, since editors often replace
// the file instead of writing it in place
func NewWatcher(path string, store *SettingsStore) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create settings watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to resolve settings path %s: %w", path, err)
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		store:    store,
		watcher:  fw,
		debounce: DefaultDebounce,
	}, nil
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		err = w.watcher.Close()
	})
	return err
}

// Run delivers changes to sink until ctx is cancelled or the watcher is closed.
// Bursts of file events within the debounce window cause a single reload.
func (w *Watcher) Run(ctx context.Context, sink ChangeSink) error {
	defer w.Close()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn(LogMsgWatcherError, "path", w.path, "error", err)

		case <-timer.C:
			if err := w.reload(ctx, sink); err != nil {
				return err
			}
		}
	}
}

// reload applies the file contents; invalid files keep the previous settings
func (w *Watcher) reload(ctx context.Context, sink ChangeSink) error {
	log := logger.FromContext(ctx)

	settings, err := LoadSettings(w.path)
	if err != nil {
		log.Warn(LogMsgSettingsInvalid, "path", w.path, "error", err)
		return nil
	}

	changes := w.store.Replace(settings)
	if len(changes) == 0 {
		log.Debug(LogMsgSettingsUnchanged, "path", w.path)
		return nil
	}

	log.Info(LogMsgSettingsReloaded, "path", w.path, "changes", len(changes))
	for _, change := range changes {
		if err := sink(ctx, change); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, domain.ErrSessionStopped) {
				return err
			}
			log.Warn(LogMsgChangeRejected, "key", change.Key, "error", err)
		}
	}
	return nil
}
