package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/NexTracker_Go/internal/domain"
	"github.com/osse101/NexTracker_Go/internal/tracker"
	"github.com/osse101/NexTracker_Go/internal/validation"
)

// Settings are the user-facing tracker options read from the settings file
type Settings struct {
	ShowOverlay     bool   `yaml:"show_overlay" json:"show_overlay"`
	AttributionMode string `yaml:"attribution_mode" json:"attribution_mode" validate:"required,oneof=strict loose"`
}

// DefaultSettings are used when the settings file is absent
func DefaultSettings() Settings {
	return Settings{
		ShowOverlay:     true,
		AttributionMode: string(tracker.AttributionStrict),
	}
}

var (
	settingsValidator = validator.New()
	settingsSchema    = validation.NewSchemaValidator()
)

// ParseSettings decodes YAML settings on top of the defaults. The document is
// checked against the settings schema first, so unknown keys are rejected.
func ParseSettings(data []byte) (Settings, error) {
	if err := checkSettingsSchema(data); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", domain.ErrInvalidSettings, err)
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", domain.ErrInvalidSettings, err)
	}
	if err := settingsValidator.Struct(s); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", domain.ErrInvalidSettings, err)
	}
	return s, nil
}

// checkSettingsSchema normalizes the YAML document to JSON values before validating it
func checkSettingsSchema(data []byte) error {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("settings are not representable as JSON: %w", err)
	}
	return settingsSchema.ValidateBytes(encoded, validation.SchemaTrackerSettings)
}

// LoadSettings reads the settings file. A missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	return ParseSettings(data)
}

// Diff returns one change event per key whose value differs, in a stable order
func Diff(old, updated Settings) []domain.ConfigChangeEvent {
	var changes []domain.ConfigChangeEvent
	if old.ShowOverlay != updated.ShowOverlay {
		changes = append(changes, domain.ConfigChangeEvent{
			Group:    tracker.ConfigGroup,
			Key:      tracker.ConfigKeyShowOverlay,
			NewValue: strconv.FormatBool(updated.ShowOverlay),
		})
	}
	if old.AttributionMode != updated.AttributionMode {
		changes = append(changes, domain.ConfigChangeEvent{
			Group:    tracker.ConfigGroup,
			Key:      tracker.ConfigKeyAttributionMode,
			NewValue: updated.AttributionMode,
		})
	}
	return changes
}

// SettingsStore holds the current settings and satisfies tracker.ConfigSource
type SettingsStore struct {
	mu       sync.RWMutex
	settings Settings
}

// NewSettingsStore creates a store seeded with the given settings
func NewSettingsStore(s Settings) *SettingsStore {
	return &SettingsStore{settings: s}
}

// ShowOverlay reports whether the user allows the overlay to be shown
func (s *SettingsStore) ShowOverlay() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.ShowOverlay
}

// AttributionMode returns the configured fight start attribution mode
func (s *SettingsStore) AttributionMode() tracker.AttributionMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return tracker.AttributionMode(s.settings.AttributionMode)
}

// Current returns a copy of the settings
func (s *SettingsStore) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Replace swaps in new settings and returns the resulting change events
func (s *SettingsStore) Replace(updated Settings) []domain.ConfigChangeEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	changes := Diff(s.settings, updated)
	s.settings = updated
	return changes
}

// Apply updates one key from a client config change and reports whether the
// stored value changed. Other groups and unknown keys leave the store untouched.
func (s *SettingsStore) Apply(change domain.ConfigChangeEvent) (bool, error) {
	if change.Group != tracker.ConfigGroup {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := s.settings
	switch change.Key {
	case tracker.ConfigKeyShowOverlay:
		show, err := strconv.ParseBool(strings.TrimSpace(change.NewValue))
		if err != nil {
			return false, fmt.Errorf("%w: %s must be true or false, got %q", domain.ErrInvalidSettings, change.Key, change.NewValue)
		}
		updated.ShowOverlay = show
	case tracker.ConfigKeyAttributionMode:
		mode, err := tracker.ParseAttributionMode(change.NewValue)
		if err != nil {
			return false, fmt.Errorf("%w: %v", domain.ErrInvalidSettings, err)
		}
		updated.AttributionMode = string(mode)
	default:
		return false, nil
	}

	changed := updated != s.settings
	s.settings = updated
	return changed, nil
}
