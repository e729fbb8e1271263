package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/osse101/NexTracker_Go/internal/config"
	"github.com/osse101/NexTracker_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// It creates the log directory, cleans up old logs and installs slog writing to
// both. Returns the log file handle (caller must close).
func SetupLogger(cfg *config.Config) (*os.File, error) {
	return setupLogger(cfg, os.Stdout, time.Now())
}

func setupLogger(cfg *config.Config, stdout io.Writer, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir)

	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat)))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	), io.MultiWriter(stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "file", logFileName)
	slog.Info(LogMsgStartingTracker,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"tick_interval", cfg.TickInterval,
		"tick_source", cfg.TickSource,
		"settings_path", cfg.SettingsPath,
		"discord_enabled", cfg.DiscordEnabled())

	for _, warning := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "detail", warning)
	}

	return logFile, nil
}

// cleanupLogs removes old log files, keeping only the most recent ones.
// Names carry a sortable timestamp, so directory order is age order.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []os.DirEntry
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry)
		}
	}

	if len(logFiles) >= LogFileRetentionLimit {
		toDelete := len(logFiles) - LogFileRetentionCount
		for i := 0; i < toDelete; i++ {
			if err := os.Remove(filepath.Join(logDir, logFiles[i].Name())); err != nil {
				fmt.Printf(LogMsgFailedDeleteOldLog, logFiles[i].Name(), err)
			}
		}
	}
}
