// Package theme manages the light/dark/system theme mode of a document.
package theme

import (
	"fmt"
	"sync"

	"github.com/peternagy/thememode/internal/debug"
	"github.com/peternagy/thememode/internal/system"
)

// Manager tracks the requested theme mode, persists it and reflects the
// effective mode onto its target element.
type Manager struct {
	store     Store // nil when storage is disabled
	key       string
	query     string
	attribute string
	darkClass bool
	el        Element
	pref      system.Preference
	onApply   func(Mode)

	mu     sync.Mutex
	mode   Mode // requested mode, never collapsed to the effective one
	cancel func()
}

// New builds a Manager, applies the initial mode and subscribes to OS
// preference changes. The only error is a failed write of the initial mode
// to the store.
func New(opts Options) (*Manager, error) {
	o := opts.withDefaults()

	m := &Manager{
		store:     o.Store,
		key:       o.StorageKey,
		query:     o.SystemQuery,
		attribute: o.Attribute,
		darkClass: !o.DisableDarkClass,
		el:        o.Element,
		pref:      o.Preference,
		onApply:   o.OnApply,
	}

	initial := m.initialMode(opts.Mode)
	if err := m.SetTheme(initial); err != nil {
		return nil, err
	}

	m.cancel = m.pref.OnChange(m.query, m.handleSystemChange)
	return m, nil
}

func (m *Manager) initialMode(explicit Mode) Mode {
	if explicit.Concrete() {
		return explicit
	}
	if m.store == nil {
		return System
	}

	stored, err := m.store.Get(m.key)
	if err != nil {
		debug.LogStorage("Failed to read stored theme mode", map[string]interface{}{
			"key":   m.key,
			"error": err.Error(),
		})
		return System
	}
	if mode := Mode(stored); mode.Valid() {
		return mode
	}
	return System
}

// GetTheme returns the requested mode (light, dark or system).
func (m *Manager) GetTheme() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// EffectiveTheme returns the mode the requested mode resolves to right now.
func (m *Manager) EffectiveTheme() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resolve(m.mode)
}

// SetTheme applies mode. An invalid mode returns an *InvalidModeError and
// leaves the state, element and store untouched.
func (m *Manager) SetTheme(mode Mode) error {
	m.mu.Lock()
	effective, err := m.apply(mode)
	m.mu.Unlock()
	if err != nil {
		return err
	}

	m.onApply(effective)
	return nil
}

// ToggleTheme switches to the opposite of the current effective mode.
// From system, the OS-resolved value is flipped into an explicit mode.
func (m *Manager) ToggleTheme() error {
	m.mu.Lock()
	next := m.mode.Opposite()
	if m.mode == System {
		next = m.systemMode().Opposite()
	}
	effective, err := m.apply(next)
	m.mu.Unlock()
	if err != nil {
		return err
	}

	m.onApply(effective)
	return nil
}

// Close drops the OS preference subscription.
func (m *Manager) Close() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// apply must be called with mu held.
func (m *Manager) apply(mode Mode) (Mode, error) {
	effective := m.resolve(mode)
	if !effective.Concrete() {
		return "", &InvalidModeError{Mode: mode}
	}

	if m.store != nil {
		if err := m.store.Set(m.key, string(mode)); err != nil {
			return "", fmt.Errorf("failed to persist theme mode: %w", err)
		}
	}

	m.mode = mode
	m.el.SetAttribute(m.attribute, string(effective))
	if m.darkClass {
		m.el.SetClass(DarkClass, effective == Dark)
	}

	debug.LogTheme("Theme applied", map[string]interface{}{
		"mode":      string(mode),
		"effective": string(effective),
	})
	return effective, nil
}

func (m *Manager) resolve(mode Mode) Mode {
	if mode == System {
		return m.systemMode()
	}
	return mode
}

func (m *Manager) systemMode() Mode {
	if m.pref.Matches(m.query) {
		return Dark
	}
	return Light
}

// handleSystemChange re-applies system unless an explicit light or dark
// choice is in effect. The check and the apply happen under one lock so a
// concurrent SetTheme cannot be overwritten.
func (m *Manager) handleSystemChange() {
	m.mu.Lock()
	if !m.followsSystem() {
		m.mu.Unlock()
		return
	}
	effective, err := m.apply(System)
	m.mu.Unlock()
	if err != nil {
		debug.LogTheme("Failed to follow system theme", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	m.onApply(effective)
}

// followsSystem must be called with mu held.
func (m *Manager) followsSystem() bool {
	if m.store == nil {
		return m.mode == System
	}

	stored, err := m.store.Get(m.key)
	if err != nil {
		debug.LogStorage("Failed to read stored theme mode", map[string]interface{}{
			"key":   m.key,
			"error": err.Error(),
		})
		return false
	}
	return stored == "" || Mode(stored) == System
}
