// Package types holds the data shapes shared with the frontend.
package types

// ThemeState describes the current theme for the UI.
type ThemeState struct {
	Mode      string `json:"mode"`      // requested: light, dark or system
	Effective string `json:"effective"` // applied: light or dark
	Attribute string `json:"attribute"`
	DarkClass bool   `json:"darkClass"`
	Selector  string `json:"selector"`
}

// ThemeChange is the payload of the theme:changed event.
type ThemeChange struct {
	Effective string `json:"effective"`
}
