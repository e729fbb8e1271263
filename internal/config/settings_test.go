package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NexTracker_Go/internal/domain"
	"github.com/osse101/NexTracker_Go/internal/tracker"
)

func TestParseSettings(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    Settings
		wantErr bool
	}{
		{
			name: "empty document keeps defaults",
			yaml: "",
			want: DefaultSettings(),
		},
		{
			name: "overrides both keys",
			yaml: "show_overlay: false\nattribution_mode: loose\n",
			want: Settings{ShowOverlay: false, AttributionMode: "loose"},
		},
		{
			name: "partial document",
			yaml: "show_overlay: false\n",
			want: Settings{ShowOverlay: false, AttributionMode: "strict"},
		},
		{
			name:    "unknown attribution mode",
			yaml:    "attribution_mode: generous\n",
			wantErr: true,
		},
		{
			name:    "unknown key",
			yaml:    "show_overlay: true\noverlay_opacity: 0.5\n",
			wantErr: true,
		},
		{
			name:    "wrong type",
			yaml:    "show_overlay: sometimes\n",
			wantErr: true,
		},
		{
			name:    "top level list",
			yaml:    "- show_overlay\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			yaml:    "show_overlay: [\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSettings([]byte(tt.yaml))
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidSettings)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	got, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got)
}

func TestLoadSettings_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	require.NoError(t, os.WriteFile(path, []byte("show_overlay: false\n"), 0o600))

	got, err := LoadSettings(path)

	require.NoError(t, err)
	assert.False(t, got.ShowOverlay)
}

func TestDiff(t *testing.T) {
	base := DefaultSettings()

	assert.Empty(t, Diff(base, base))

	changed := Settings{ShowOverlay: false, AttributionMode: "loose"}
	assert.Equal(t, []domain.ConfigChangeEvent{
		{Group: tracker.ConfigGroup, Key: tracker.ConfigKeyShowOverlay, NewValue: "false"},
		{Group: tracker.ConfigGroup, Key: tracker.ConfigKeyAttributionMode, NewValue: "loose"},
	}, Diff(base, changed))
}

func TestSettingsStore(t *testing.T) {
	store := NewSettingsStore(DefaultSettings())
	assert.True(t, store.ShowOverlay())
	assert.Equal(t, tracker.AttributionStrict, store.AttributionMode())

	changes := store.Replace(Settings{ShowOverlay: false, AttributionMode: "strict"})

	require.Len(t, changes, 1)
	assert.Equal(t, tracker.ConfigKeyShowOverlay, changes[0].Key)
	assert.False(t, store.ShowOverlay())
	assert.Equal(t, Settings{ShowOverlay: false, AttributionMode: "strict"}, store.Current())
}

func TestSettingsStore_Apply(t *testing.T) {
	change := func(key, value string) domain.ConfigChangeEvent {
		return domain.ConfigChangeEvent{Group: tracker.ConfigGroup, Key: key, NewValue: value}
	}

	t.Run("show overlay", func(t *testing.T) {
		store := NewSettingsStore(DefaultSettings())

		changed, err := store.Apply(change(tracker.ConfigKeyShowOverlay, "false"))
		require.NoError(t, err)
		assert.True(t, changed)
		assert.False(t, store.ShowOverlay())

		changed, err = store.Apply(change(tracker.ConfigKeyShowOverlay, "false"))
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("attribution mode is normalized", func(t *testing.T) {
		store := NewSettingsStore(DefaultSettings())

		changed, err := store.Apply(change(tracker.ConfigKeyAttributionMode, " LOOSE "))
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, tracker.AttributionLoose, store.AttributionMode())
	})

	t.Run("invalid values leave the store untouched", func(t *testing.T) {
		store := NewSettingsStore(DefaultSettings())

		_, err := store.Apply(change(tracker.ConfigKeyShowOverlay, "sometimes"))
		assert.ErrorIs(t, err, domain.ErrInvalidSettings)
		_, err = store.Apply(change(tracker.ConfigKeyAttributionMode, "greedy"))
		assert.ErrorIs(t, err, domain.ErrInvalidSettings)

		assert.Equal(t, DefaultSettings(), store.Current())
	})

	t.Run("other groups and keys are ignored", func(t *testing.T) {
		store := NewSettingsStore(DefaultSettings())

		changed, err := store.Apply(domain.ConfigChangeEvent{Group: "other", Key: tracker.ConfigKeyShowOverlay, NewValue: "false"})
		require.NoError(t, err)
		assert.False(t, changed)

		changed, err = store.Apply(change("unrelated", "x"))
		require.NoError(t, err)
		assert.False(t, changed)

		assert.Equal(t, DefaultSettings(), store.Current())
	})

	t.Run("file reload after a client change is diffed against the applied value", func(t *testing.T) {
		store := NewSettingsStore(DefaultSettings())

		_, err := store.Apply(change(tracker.ConfigKeyAttributionMode, "loose"))
		require.NoError(t, err)

		changes := store.Replace(DefaultSettings())

		require.Len(t, changes, 1)
		assert.Equal(t, tracker.ConfigKeyAttributionMode, changes[0].Key)
		assert.Equal(t, string(tracker.AttributionStrict), changes[0].NewValue)
	})
}
