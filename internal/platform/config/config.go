// Package config loads qotd settings using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables read as config (QOTD_UI_THEME -> ui.theme).
const EnvPrefix = "QOTD_"

const (
	DefaultLogMaxSizeMB  = 5
	DefaultLogMaxBackups = 2
)

type Config struct {
	UI    UIConfig    `koanf:"ui"`
	Share ShareConfig `koanf:"share"`
	Log   LogConfig   `koanf:"log"`
}

type UIConfig struct {
	Theme     string `koanf:"theme"      validate:"oneof=classic neon mono"`
	AltScreen bool   `koanf:"alt_screen"`
}

type ShareConfig struct {
	Target string `koanf:"target" validate:"oneof=clipboard stdout"`
}

// LogConfig controls the diagnostic log. An empty File means stderr for
// one-shot commands and no log at all while the TUI is running.
type LogConfig struct {
	Level      string `koanf:"level"       validate:"oneof=debug info warn error"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb" validate:"min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"min=0,max=100"`
}

func defaults() map[string]any {
	return map[string]any{
		"ui.theme":        "classic",
		"ui.alt_screen":   true,
		"share.target":    "clipboard",
		"log.level":       "warn",
		"log.file":        "",
		"log.max_size_mb": DefaultLogMaxSizeMB,
		"log.max_backups": DefaultLogMaxBackups,
	}
}

// DefaultPath is where Load looks when no explicit file is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "qotd", "config.yaml")
}

// Load merges, lowest to highest precedence:
//  1. built-in defaults
//  2. the YAML file at path (or DefaultPath when path is empty)
//  3. QOTD_* environment variables
//  4. overrides (typically command-line flags; keys like "ui.theme")
//
// An explicit path must exist; the default path is optional.
func Load(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %q: %w", path, err)
		}
	} else if err := loadFileIfExists(k, DefaultPath()); err != nil {
		return nil, fmt.Errorf("loading default config: %w", err)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		// Only the first underscore separates section from key.
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("loading overrides: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}
