package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingTracker     = "Starting Nex tracker"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	LogMsgEventSystemInitialized = "Event system initialized"
)

// =============================================================================
// Settings Sync
// =============================================================================

const (
	LogMsgSettingsLoaded        = "Tracker settings loaded"
	LogMsgSettingsWatchStarted  = "Watching tracker settings"
	LogMsgSettingsWatchStopped  = "Settings watcher stopped"
	LogMsgSettingsWatchDisabled = "Settings watcher unavailable, reload disabled"

	ErrMsgFailedLoadSettings    = "failed to load tracker settings"
	ErrMsgFailedCreateConfigDir = "failed to create settings directory"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	// NotifyQueueSize bounds pending Discord sends; results arrive at most once per fight
	NotifyQueueSize = 16

	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgHistoryRegistered          = "Fight history registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedCreateDiscordSession = "failed to create Discord session"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	// SessionStopTimeout bounds how long shutdown waits for the session loop to exit
	SessionStopTimeout = 5 * time.Second

	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgShuttingDownSession  = "Stopping tracker session..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSessionStopTimeout   = "Tracker session did not stop in time"
	LogMsgWatcherCloseFailed   = "Settings watcher close failed"
)
