package system

import (
	"context"
	"sync"
	"time"

	"github.com/peternagy/thememode/internal/debug"
)

// Watcher turns a polled Detector into a Preference.
type Watcher struct {
	detector Detector
	interval time.Duration
	subs     subscribers

	mu       sync.Mutex
	dark     bool // last successful read
	polled   bool
	baseline bool // value Poll compares against
}

// NewWatcher creates a Watcher. A non-positive interval uses DefaultPollInterval.
func NewWatcher(detector Detector, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Watcher{
		detector: detector,
		interval: interval,
	}
}

// Matches evaluates query against the last polled value. Before the first
// Poll it reads the detector directly.
func (w *Watcher) Matches(query string) bool {
	w.mu.Lock()
	polled, dark := w.polled, w.baseline
	w.mu.Unlock()

	if !polled {
		dark = w.current()
	}
	return matches(query, dark)
}

// OnChange subscribes fn to changes detected by Poll.
func (w *Watcher) OnChange(query string, fn func()) func() {
	return w.subs.add(query, fn)
}

// Poll re-reads the detector and notifies subscribers if the setting flipped.
// It reports whether a change was seen.
func (w *Watcher) Poll() bool {
	now := w.current()

	w.mu.Lock()
	changed := w.polled && now != w.baseline
	w.polled = true
	w.baseline = now
	w.mu.Unlock()

	if !changed {
		return false
	}

	debug.LogSystem("System color scheme changed", map[string]interface{}{
		"dark": now,
	})
	w.subs.notify()
	return true
}

// Run polls until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	w.Poll()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Poll()
		}
	}
}

// current reads the detector, keeping the last known value when it fails.
func (w *Watcher) current() bool {
	dark, err := w.detector.Dark()

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		debug.LogSystem("Failed to detect system color scheme", map[string]interface{}{
			"error": err.Error(),
		})
		return w.dark
	}
	w.dark = dark
	return dark
}
