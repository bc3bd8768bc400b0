// Package config holds the engine's tunable settings: clipboard
// integration, the explicit clipboard-paste key bindings, logging, and
// notification buffering. Settings load from an optional TOML file with
// VIMBRIDGE_-prefixed environment overrides on top.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the engine configuration.
type Config struct {
	Clipboard ClipboardConfig `toml:"clipboard"`
	Logging   LoggingConfig   `toml:"logging"`
	Notify    NotifyConfig    `toml:"notify"`
}

// ClipboardConfig controls the system clipboard bridge.
type ClipboardConfig struct {
	// Enabled turns the OS clipboard integration on. When false, yank
	// still fills the internal register and the explicit paste keys are
	// not mapped.
	Enabled bool `toml:"enabled"`

	// PasteAfterKey is the key sequence mapped to paste-after from the
	// system clipboard.
	PasteAfterKey string `toml:"paste_after_key"`

	// PasteBeforeKey is the key sequence mapped to paste-before from the
	// system clipboard.
	PasteBeforeKey string `toml:"paste_before_key"`
}

// LoggingConfig controls the engine logger.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn, error.
	Level string `toml:"level"`
}

// NotifyConfig controls notification delivery.
type NotifyConfig struct {
	// Buffer is the async notification buffer size. 0 delivers
	// synchronously.
	Buffer int `toml:"buffer"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Clipboard: ClipboardConfig{
			Enabled:        true,
			PasteAfterKey:  "<C-S-v>",
			PasteBeforeKey: "<C-S-V>",
		},
		Logging: LoggingConfig{Level: "info"},
		Notify:  NotifyConfig{Buffer: 16},
	}
}

// Load builds the configuration from defaults, then the TOML file at path
// (a missing file is not an error; an empty path skips the file layer),
// then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// Environment variable names recognized by applyEnv.
const (
	envClipboardEnabled = "VIMBRIDGE_CLIPBOARD_ENABLED"
	envPasteAfterKey    = "VIMBRIDGE_PASTE_AFTER_KEY"
	envPasteBeforeKey   = "VIMBRIDGE_PASTE_BEFORE_KEY"
	envLogLevel         = "VIMBRIDGE_LOG_LEVEL"
)

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(envClipboardEnabled); ok {
		cfg.Clipboard.Enabled = v == "true" || v == "1"
	}
	if v, ok := os.LookupEnv(envPasteAfterKey); ok {
		cfg.Clipboard.PasteAfterKey = v
	}
	if v, ok := os.LookupEnv(envPasteBeforeKey); ok {
		cfg.Clipboard.PasteBeforeKey = v
	}
	if v, ok := os.LookupEnv(envLogLevel); ok {
		cfg.Logging.Level = v
	}
}
