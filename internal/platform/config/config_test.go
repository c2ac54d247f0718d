package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduvibe/internal/platform/config"
)

func TestNewDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.New(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "record.json"), cfg.RecordPath)
	assert.Equal(t, config.BackendFile, cfg.Backend)
	assert.Equal(t, 25, cfg.FocusMinutes)
	assert.True(t, cfg.SessionNotes)
}

func TestNewRequiresDataDir(t *testing.T) {
	_, err := config.New("")
	assert.Error(t, err)
}

func TestYAMLAndEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	yml := "backend: badger\ntimezone: UTC\nfocus_minutes: 50\nsession_notes: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yml), 0o644))
	t.Setenv("EDUVIBE_FOCUS_MINUTES", "45")

	cfg, err := config.New(dir)
	require.NoError(t, err)
	assert.Equal(t, config.BackendBadger, cfg.Backend)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 45, cfg.FocusMinutes)
	assert.False(t, cfg.SessionNotes)
}

func TestValidateRejectsUnknownBackendAndZone(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EDUVIBE_BACKEND", "postgres")
	_, err := config.New(dir)
	assert.Error(t, err)

	t.Setenv("EDUVIBE_BACKEND", "")
	t.Setenv("EDUVIBE_TIMEZONE", "Mars/Olympus")
	_, err = config.New(dir)
	assert.Error(t, err)
}
