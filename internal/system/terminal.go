package system

import (
	"os"

	"github.com/muesli/termenv"
)

// TerminalDetector reports dark when the terminal background is dark.
type TerminalDetector struct {
	Output *termenv.Output
}

// NewTerminalDetector queries the terminal attached to stdout.
func NewTerminalDetector() *TerminalDetector {
	return &TerminalDetector{Output: termenv.NewOutput(os.Stdout)}
}

func (d *TerminalDetector) Dark() (bool, error) {
	return d.Output.HasDarkBackground(), nil
}
