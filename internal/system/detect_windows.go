//go:build windows
// +build windows

package system

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const personalizeKey = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`

// windowsDetector reads AppsUseLightTheme from the current user's registry.
type windowsDetector struct{}

// OSDetector returns the detector for the running platform.
func OSDetector() Detector {
	return &windowsDetector{}
}

func (d *windowsDetector) Dark() (bool, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil {
		return false, fmt.Errorf("failed to open personalize key: %w", err)
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue("AppsUseLightTheme")
	if err != nil {
		return false, fmt.Errorf("failed to read AppsUseLightTheme: %w", err)
	}
	return v == 0, nil
}
