package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"":        log.InfoLevel,
		"chatty":  log.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn"}, &buf)

	logger.Debug("refreshed quote", "id", 3)
	assert.Empty(t, buf.String())

	logger.Warn("share failed", "err", "no display")
	out := buf.String()
	assert.Contains(t, out, "share failed")
	assert.Contains(t, out, "qotd")
	assert.Contains(t, out, "no display")
}

func TestNew_NilWriterDiscards(t *testing.T) {
	logger := New(Config{Level: "debug"}, nil)
	assert.NotPanics(t, func() { logger.Error("nowhere") })
}

func TestOpen_FallbackWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := Open(Config{Level: "info"}, &buf)
	defer closer.Close()

	logger.Info("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestOpen_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "qotd.log")
	logger, closer := Open(Config{Level: "debug", File: p, MaxSizeMB: 1}, nil)

	logger.Debug("navigate", "to", "favorites")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "navigate")
	assert.Contains(t, string(b), "favorites")
}
