package system

import "sync"

// Static is a Preference whose dark setting is set by hand. Headless hosts
// use it to pin the scheme.
type Static struct {
	subs subscribers

	mu   sync.Mutex
	dark bool
}

// NewStatic returns a Static preference reporting dark.
func NewStatic(dark bool) *Static {
	return &Static{dark: dark}
}

func (s *Static) Matches(query string) bool {
	s.mu.Lock()
	dark := s.dark
	s.mu.Unlock()
	return matches(query, dark)
}

func (s *Static) OnChange(query string, fn func()) func() {
	return s.subs.add(query, fn)
}

// SetDark changes the setting and synchronously notifies subscribers when it flips.
func (s *Static) SetDark(dark bool) {
	s.mu.Lock()
	changed := s.dark != dark
	s.dark = dark
	s.mu.Unlock()

	if changed {
		s.subs.notify()
	}
}

// Dark lets a Static double as a Detector.
func (s *Static) Dark() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark, nil
}
