// Package logging builds the charmbracelet/log logger used across qotd.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config mirrors the log section of the app config.
type Config struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// New builds a logger writing to w. A nil w discards everything.
func New(cfg Config, w io.Writer) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(cfg.Level),
		Prefix:          "qotd",
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
}

// Open builds a logger for cfg. When cfg.File is set the log goes to a
// rotating file and the returned closer must be closed on exit;
// otherwise it goes to fallback.
func Open(cfg Config, fallback io.Writer) (*log.Logger, io.Closer) {
	if strings.TrimSpace(cfg.File) == "" {
		return New(cfg, fallback), nopCloser{}
	}
	lj := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
	return New(cfg, lj), lj
}

// ParseLevel maps a config string to a level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	}
	return log.InfoLevel
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
