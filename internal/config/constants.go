package config

import "time"

// Tick sources
const (
	TickSourceInternal = "internal"
	TickSourceExternal = "external"
)

// Defaults
const (
	DefaultSettingsPath = "configs/tracker.yaml"
	DefaultDebounce     = 100 * time.Millisecond
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleAPIKey       = "generate_with_openssl_rand_hex_32"
	ExampleDiscordToken = "your_discord_bot_token"
)

// Log messages
const (
	LogMsgEnvFileLoaded     = "Loaded environment variables from .env file"
	LogMsgEnvFileMissing    = "No .env file loaded, using process environment"
	LogMsgSettingsReloaded  = "Tracker settings reloaded"
	LogMsgSettingsInvalid   = "Ignoring invalid tracker settings file"
	LogMsgSettingsUnchanged = "Tracker settings file changed but values did not"
	LogMsgWatcherError      = "Settings watcher error"
	LogMsgChangeRejected    = "Settings change could not be delivered"
)
