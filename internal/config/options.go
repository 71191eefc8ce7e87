package config

import (
	"context"

	"github.com/peternagy/thememode/internal/credential"
	"github.com/peternagy/thememode/internal/storage"
	"github.com/peternagy/thememode/internal/system"
	"github.com/peternagy/thememode/internal/theme"
)

// Store builds the persistence surface selected by Storage. A nil store
// means storage is disabled.
func (c Config) Store() theme.Store {
	switch c.Storage {
	case StorageNone:
		return nil
	case StorageKeyring:
		return credential.NewKeyringStore()
	case StorageMemory:
		return storage.NewMemoryStore()
	}

	path := c.StorageFile
	if path == "" {
		path = storage.DefaultPath()
	}
	return storage.NewFileStore(path)
}

// Preference builds the OS preference source selected by System. Polling
// sources run until ctx is cancelled.
func (c Config) Preference(ctx context.Context) system.Preference {
	switch c.System {
	case SystemLight:
		return system.NewStatic(false)
	case SystemDark:
		return system.NewStatic(true)
	}

	var detector system.Detector = system.OSDetector()
	if c.System == SystemTerminal {
		detector = system.NewTerminalDetector()
	}
	w := system.NewWatcher(detector, c.PollInterval)
	go w.Run(ctx)
	return w
}

// Options turns the config into theme.Options. The caller fills in the
// target element and callback.
func (c Config) Options(ctx context.Context) theme.Options {
	store := c.Store()
	return theme.Options{
		Mode:             theme.Mode(c.Mode),
		Store:            store,
		DisableStorage:   store == nil,
		StorageKey:       c.StorageKey,
		SystemQuery:      c.SystemQuery,
		Preference:       c.Preference(ctx),
		Selector:         c.Element,
		Attribute:        c.Attribute,
		DisableDarkClass: !c.DarkClassEnabled(),
	}
}
