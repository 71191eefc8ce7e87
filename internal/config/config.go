// Package config loads thememode settings from config.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/peternagy/thememode/internal/theme"
)

// FileName is the config file looked up in the config directory.
const FileName = "config.toml"

// Storage backends.
const (
	StorageFile    = "file"
	StorageKeyring = "keyring"
	StorageMemory  = "memory"
	StorageNone    = "none"
)

// System preference sources.
const (
	SystemAuto     = "auto"
	SystemTerminal = "terminal"
	SystemLight    = "light"
	SystemDark     = "dark"
)

// Config represents the configuration loaded from config.toml.
type Config struct {
	// Mode is the initial mode. Empty defers to the stored value.
	Mode string `toml:"mode"`

	// Storage selects where the requested mode is persisted:
	// "file" (default), "keyring", "memory" or "none".
	Storage string `toml:"storage"`

	// StorageFile overrides the preferences file used by the file backend.
	StorageFile string `toml:"storage_file"`

	StorageKey  string `toml:"storage_key"`
	SystemQuery string `toml:"system_query"`

	// Element is a selector for the target element. Empty targets the root.
	Element   string `toml:"element"`
	Attribute string `toml:"attribute"`

	// DarkClass toggles the "dark" class. Defaults to true.
	DarkClass *bool `toml:"dark_class"`

	// System selects the OS preference source:
	// "auto" (default), "terminal", "light" or "dark".
	System string `toml:"system"`

	// PollInterval is how often the OS preference is re-read, e.g. "2s".
	PollInterval time.Duration `toml:"poll_interval"`

	// Debug enables debug logging.
	Debug bool `toml:"debug"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	dark := true
	return Config{
		Storage:      StorageFile,
		StorageKey:   theme.DefaultStorageKey,
		SystemQuery:  theme.DefaultSystemQuery,
		Attribute:    theme.DefaultAttribute,
		DarkClass:    &dark,
		System:       SystemAuto,
		PollInterval: 2 * time.Second,
	}
}

// Load reads configuration from config.toml in dir.
// A missing file yields Default (not an error).
func Load(dir string) (Config, error) {
	return LoadFrom(filepath.Join(dir, FileName))
}

// LoadFrom reads configuration from a specific file path. Fields the file
// leaves unset keep their defaults.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enum fields and the initial mode.
func (c Config) Validate() error {
	if c.Mode != "" {
		if _, err := theme.ParseMode(c.Mode); err != nil {
			return err
		}
	}

	switch c.Storage {
	case "", StorageFile, StorageKeyring, StorageMemory, StorageNone:
	default:
		return fmt.Errorf("unknown storage %q, must be one of [file, keyring, memory, none]", c.Storage)
	}

	switch c.System {
	case "", SystemAuto, SystemTerminal, SystemLight, SystemDark:
	default:
		return fmt.Errorf("unknown system source %q, must be one of [auto, terminal, light, dark]", c.System)
	}

	if c.PollInterval < 0 {
		return fmt.Errorf("poll_interval must not be negative")
	}
	return nil
}

// DarkClassEnabled reports whether the "dark" class should be toggled.
func (c Config) DarkClassEnabled() bool {
	return c.DarkClass == nil || *c.DarkClass
}
