package system

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		query  string
		want   Scheme
		wantOK bool
	}{
		{"(prefers-color-scheme: dark)", SchemeDark, true},
		{"(prefers-color-scheme: light)", SchemeLight, true},
		{"( Prefers-Color-Scheme :  DARK )", SchemeDark, true},
		{"(prefers-color-scheme:dark)", SchemeDark, true},
		{"prefers-color-scheme: dark", "", false},
		{"(prefers-color-scheme: sepia)", "", false},
		{"(prefers-reduced-motion: reduce)", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := ParseQuery(tt.query)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseQuery(%q) = %q, %v; want %q, %v", tt.query, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStaticMatches(t *testing.T) {
	s := NewStatic(true)
	if !s.Matches("(prefers-color-scheme: dark)") {
		t.Error("dark query should match when dark")
	}
	if s.Matches("(prefers-color-scheme: light)") {
		t.Error("light query should not match when dark")
	}
	if s.Matches("(min-width: 600px)") {
		t.Error("unknown query should never match")
	}

	s.SetDark(false)
	if !s.Matches("(prefers-color-scheme: light)") {
		t.Error("light query should match after switching to light")
	}
}

func TestStaticNotifiesOnFlipOnly(t *testing.T) {
	s := NewStatic(false)
	calls := 0
	s.OnChange("(prefers-color-scheme: dark)", func() { calls++ })
	unknown := 0
	s.OnChange("(min-width: 600px)", func() { unknown++ })

	s.SetDark(false)
	if calls != 0 {
		t.Errorf("calls = %d after no-op SetDark, want 0", calls)
	}

	s.SetDark(true)
	s.SetDark(false)
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if unknown != 0 {
		t.Errorf("unknown query subscriber called %d times, want 0", unknown)
	}
}

func TestStaticCancel(t *testing.T) {
	s := NewStatic(false)
	calls := 0
	cancel := s.OnChange("(prefers-color-scheme: dark)", func() { calls++ })

	cancel()
	s.SetDark(true)
	if calls != 0 {
		t.Errorf("calls = %d after cancel, want 0", calls)
	}
}

type fakeDetector struct {
	mu   sync.Mutex
	dark bool
	err  error
}

func (f *fakeDetector) Dark() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dark, f.err
}

func (f *fakeDetector) set(dark bool, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dark, f.err = dark, err
}

// countingDetector counts reads of the underlying fakeDetector.
type countingDetector struct {
	*fakeDetector
	mu    sync.Mutex
	reads int
}

func (c *countingDetector) Dark() (bool, error) {
	c.mu.Lock()
	c.reads++
	c.mu.Unlock()
	return c.fakeDetector.Dark()
}

func TestWatcherPoll(t *testing.T) {
	d := &fakeDetector{}
	w := NewWatcher(d, time.Hour)

	calls := 0
	w.OnChange("(prefers-color-scheme: dark)", func() { calls++ })

	if w.Poll() {
		t.Error("first Poll should only record a baseline")
	}

	d.set(true, nil)
	if w.Matches("(prefers-color-scheme: dark)") {
		t.Error("Matches should serve the polled value until the next Poll")
	}
	if !w.Poll() {
		t.Error("Poll should report the flip")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if !w.Matches("(prefers-color-scheme: dark)") {
		t.Error("Matches should reflect the latest Poll")
	}

	if w.Poll() {
		t.Error("Poll without a change should report false")
	}
}

func TestWatcherMatchesUsesCacheAfterPoll(t *testing.T) {
	d := &countingDetector{fakeDetector: &fakeDetector{dark: true}}
	w := NewWatcher(d, time.Hour)

	if !w.Matches("(prefers-color-scheme: dark)") {
		t.Error("Matches before Poll should read the detector")
	}
	w.Poll()

	d.mu.Lock()
	before := d.reads
	d.mu.Unlock()

	for i := 0; i < 5; i++ {
		w.Matches("(prefers-color-scheme: dark)")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.reads != before {
		t.Errorf("detector read %d more times after Poll, want 0", d.reads-before)
	}
}

func TestWatcherKeepsLastValueOnError(t *testing.T) {
	d := &fakeDetector{dark: true}
	w := NewWatcher(d, time.Hour)
	w.Poll()

	d.set(false, errors.New("portal unavailable"))
	if !w.Matches("(prefers-color-scheme: dark)") {
		t.Error("Matches should fall back to the last successful read")
	}
	if w.Poll() {
		t.Error("a failed read should not count as a change")
	}
}

func TestWatcherRunStopsOnCancel(t *testing.T) {
	d := &fakeDetector{}
	w := NewWatcher(d, 5*time.Millisecond)

	changed := make(chan struct{}, 1)
	w.OnChange("(prefers-color-scheme: dark)", func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	d.set(true, nil)

	select {
	case <-changed:
	case <-time.After(time.Second):
		t.Fatal("watcher did not report the change")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewWatcherDefaultInterval(t *testing.T) {
	w := NewWatcher(&fakeDetector{}, 0)
	if w.interval != DefaultPollInterval {
		t.Errorf("interval = %v, want %v", w.interval, DefaultPollInterval)
	}
}
