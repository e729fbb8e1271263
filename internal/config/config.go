package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/osse101/NexTracker_Go/internal/logger"
)

// Config holds the process configuration loaded from environment variables
type Config struct {
	// Server
	Port        int    `env:"PORT" envDefault:"8080"`
	APIKey      string `env:"API_KEY"` // Guards the ingest API when set
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"nex-tracker"`
	Version     string `env:"VERSION" envDefault:"dev"`

	// TrustedProxies lists proxy addresses whose X-Forwarded-For header is honored
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir    string `env:"LOG_DIR" envDefault:"logs"`

	// Session
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"600ms"`
	TickSource   string        `env:"TICK_SOURCE" envDefault:"internal"`
	SettingsPath string        `env:"SETTINGS_PATH" envDefault:"configs/tracker.yaml"`

	// History
	HistorySize int           `env:"HISTORY_SIZE" envDefault:"50"`
	HistoryTTL  time.Duration `env:"HISTORY_TTL" envDefault:"24h"`

	// Discord notifications, disabled unless both are set
	DiscordToken     string `env:"DISCORD_TOKEN"`
	DiscordChannelID string `env:"DISCORD_CHANNEL_ID"`
	NotifyWorkers    int    `env:"NOTIFY_WORKERS" envDefault:"2"`
}

// Load reads a .env file when present, then parses the environment into Config
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug(LogMsgEnvFileMissing, "reason", err)
	} else {
		logger.Debug(LogMsgEnvFileLoaded)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations that struct tags cannot express
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d (must be 1-65535)", c.Port)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("invalid TICK_INTERVAL: %s (must be positive)", c.TickInterval)
	}
	if c.TickSource != TickSourceInternal && c.TickSource != TickSourceExternal {
		return fmt.Errorf("invalid TICK_SOURCE: %q (must be %s or %s)", c.TickSource, TickSourceInternal, TickSourceExternal)
	}
	if c.HistorySize <= 0 {
		return fmt.Errorf("invalid HISTORY_SIZE: %d (must be positive)", c.HistorySize)
	}
	if c.HistoryTTL < 0 {
		return fmt.Errorf("invalid HISTORY_TTL: %s (must not be negative)", c.HistoryTTL)
	}
	if c.NotifyWorkers < 1 {
		return fmt.Errorf("invalid NOTIFY_WORKERS: %d (must be at least 1)", c.NotifyWorkers)
	}
	return nil
}

// DiscordEnabled reports whether fight notifications should be sent
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}

// ExternalTicks reports whether ticks only arrive through the ingest API
func (c *Config) ExternalTicks() bool {
	return c.TickSource == TickSourceExternal
}
