//go:build linux
// +build linux

package system

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/godbus/dbus/v5"
)

const (
	portalDest       = "org.freedesktop.portal.Desktop"
	portalPath       = "/org/freedesktop/portal/desktop"
	portalRead       = "org.freedesktop.portal.Settings.Read"
	appearanceNS     = "org.freedesktop.appearance"
	colorSchemeKey   = "color-scheme"
	portalPreferDark = 1
)

// linuxDetector asks the desktop settings portal, then falls back to gsettings.
type linuxDetector struct {
	gsettings string // path to gsettings, empty if unavailable
}

// OSDetector returns the detector for the running platform.
func OSDetector() Detector {
	d := &linuxDetector{}
	if path, err := exec.LookPath("gsettings"); err == nil {
		d.gsettings = path
	}
	return d
}

func (d *linuxDetector) Dark() (bool, error) {
	if dark, err := d.portalDark(); err == nil {
		return dark, nil
	}
	if d.gsettings == "" {
		return false, fmt.Errorf("no color scheme source available")
	}
	return d.gsettingsDark()
}

// portalDark reads org.freedesktop.appearance color-scheme: 0 none, 1 dark, 2 light.
func (d *linuxDetector) portalDark() (bool, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return false, fmt.Errorf("failed to connect to session bus: %w", err)
	}

	var value dbus.Variant
	obj := conn.Object(portalDest, dbus.ObjectPath(portalPath))
	if err := obj.Call(portalRead, 0, appearanceNS, colorSchemeKey).Store(&value); err != nil {
		return false, fmt.Errorf("failed to read portal setting: %w", err)
	}

	v := value.Value()
	// Read wraps the setting in a second variant.
	if inner, ok := v.(dbus.Variant); ok {
		v = inner.Value()
	}
	scheme, ok := v.(uint32)
	if !ok {
		return false, fmt.Errorf("unexpected color-scheme type %T", v)
	}
	return scheme == portalPreferDark, nil
}

func (d *linuxDetector) gsettingsDark() (bool, error) {
	output, err := exec.Command(d.gsettings, "get", "org.gnome.desktop.interface", "color-scheme").Output()
	if err == nil {
		lower := strings.ToLower(string(output))
		if strings.Contains(lower, "dark") {
			return true, nil
		}
		if strings.Contains(lower, "light") {
			return false, nil
		}
	}

	// Older GNOME: infer from the GTK theme name.
	output, err = exec.Command(d.gsettings, "get", "org.gnome.desktop.interface", "gtk-theme").Output()
	if err != nil {
		return false, fmt.Errorf("gsettings failed: %w", err)
	}
	return strings.Contains(strings.ToLower(string(output)), "dark"), nil
}
