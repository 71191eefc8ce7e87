//go:build darwin
// +build darwin

package system

import (
	"os/exec"
	"strings"
)

// macOSDetector reads AppleInterfaceStyle from the global defaults domain.
type macOSDetector struct{}

// OSDetector returns the detector for the running platform.
func OSDetector() Detector {
	return &macOSDetector{}
}

func (d *macOSDetector) Dark() (bool, error) {
	output, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		// The key only exists in dark mode.
		return false, nil
	}
	return strings.TrimSpace(string(output)) == "Dark", nil
}
