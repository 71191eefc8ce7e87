package main

import "github.com/peternagy/thememode/internal/theme"

// =============================================================================
// Theme Methods — Thin Facade for Wails Bindings
// =============================================================================

// GetTheme returns the requested mode: light, dark or system.
func (a *App) GetTheme() string {
	m := a.manager()
	if m == nil {
		return ""
	}
	return string(m.GetTheme())
}

// GetEffectiveTheme returns the applied mode: light or dark.
func (a *App) GetEffectiveTheme() string {
	m := a.manager()
	if m == nil {
		return ""
	}
	return string(m.EffectiveTheme())
}

// SetTheme applies and persists the given mode.
func (a *App) SetTheme(mode string) error {
	m := a.manager()
	if m == nil {
		return errThemeNotReady
	}
	return m.SetTheme(theme.Mode(mode))
}

// ToggleTheme switches between light and dark.
func (a *App) ToggleTheme() error {
	m := a.manager()
	if m == nil {
		return errThemeNotReady
	}
	return m.ToggleTheme()
}

// GetThemeState returns the full theme state for the UI.
func (a *App) GetThemeState() ThemeState {
	st := ThemeState{
		Attribute: a.attribute(),
		DarkClass: a.cfg.DarkClassEnabled(),
		Selector:  a.cfg.Element,
	}
	if m := a.manager(); m != nil {
		st.Mode = string(m.GetTheme())
		st.Effective = string(m.EffectiveTheme())
	}
	return st
}
