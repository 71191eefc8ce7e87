package theme

import (
	"errors"
	"fmt"
)

// Mode is a theme mode. A requested mode is one of Light, Dark or System;
// an effective mode is always Light or Dark.
type Mode string

const (
	Light  Mode = "light"
	Dark   Mode = "dark"
	System Mode = "system"
)

// Valid reports whether m is one of light, dark or system.
func (m Mode) Valid() bool {
	return m == Light || m == Dark || m == System
}

// Concrete reports whether m can be applied as-is (light or dark).
func (m Mode) Concrete() bool {
	return m == Light || m == Dark
}

// Opposite flips light and dark. Any other value is returned unchanged.
func (m Mode) Opposite() Mode {
	switch m {
	case Light:
		return Dark
	case Dark:
		return Light
	}
	return m
}

func (m Mode) String() string {
	return string(m)
}

// ErrInvalidMode is matched by every *InvalidModeError.
var ErrInvalidMode = errors.New("invalid theme mode")

// InvalidModeError is returned when a value outside {light, dark, system} is applied.
type InvalidModeError struct {
	Mode Mode
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid theme mode %q, must be one of [light, dark, system]", string(e.Mode))
}

func (e *InvalidModeError) Is(target error) bool {
	return target == ErrInvalidMode
}

// ParseMode converts s into a Mode, rejecting anything that is not a valid mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", &InvalidModeError{Mode: m}
	}
	return m, nil
}
