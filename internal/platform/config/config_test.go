package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the default config location at an empty temp dir.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "classic", cfg.UI.Theme)
	assert.True(t, cfg.UI.AltScreen)
	assert.Equal(t, "clipboard", cfg.Share.Target)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, DefaultLogMaxSizeMB, cfg.Log.MaxSizeMB)
	assert.Equal(t, DefaultLogMaxBackups, cfg.Log.MaxBackups)
	require.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	p := writeFile(t, "ui:\n  theme: neon\n  alt_screen: false\nlog:\n  level: debug\n")

	cfg, err := Load(p, nil)
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.UI.Theme)
	assert.False(t, cfg.UI.AltScreen)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "clipboard", cfg.Share.Target)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	p := writeFile(t, "ui:\n  theme: neon\n")
	t.Setenv("QOTD_UI_THEME", "mono")
	t.Setenv("QOTD_LOG_MAX_SIZE_MB", "42")

	cfg, err := Load(p, nil)
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.UI.Theme)
	assert.Equal(t, 42, cfg.Log.MaxSizeMB)
}

func TestLoad_OverridesWin(t *testing.T) {
	isolate(t)
	t.Setenv("QOTD_UI_THEME", "mono")

	cfg, err := Load("", map[string]any{"ui.theme": "neon", "share.target": "stdout"})
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.UI.Theme)
	assert.Equal(t, "stdout", cfg.Share.Target)
}

func TestValidate_ReportsKoanfKeys(t *testing.T) {
	isolate(t)
	cfg, err := Load("", map[string]any{"ui.theme": "rainbow", "log.max_size_mb": 0})
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.theme must be one of: classic neon mono")
	assert.Contains(t, err.Error(), "log.max_size_mb must be at least 1")
}
