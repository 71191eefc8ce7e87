// Package system reports the operating system's color-scheme preference.
package system

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Preference answers media-style preference queries and notifies on change.
type Preference interface {
	// Matches reports whether query currently holds.
	Matches(query string) bool
	// OnChange calls fn whenever the answer to query may have changed.
	// The returned func removes the subscription.
	OnChange(query string, fn func()) (cancel func())
}

// Detector reads the current dark-mode setting from some host source.
type Detector interface {
	Dark() (bool, error)
}

// DetectorFunc adapts a function to Detector.
type DetectorFunc func() (bool, error)

func (f DetectorFunc) Dark() (bool, error) { return f() }

// Scheme is a color scheme a query can ask about.
type Scheme string

const (
	SchemeDark  Scheme = "dark"
	SchemeLight Scheme = "light"
)

// ParseQuery parses "(prefers-color-scheme: dark)" and its light variant.
// Whitespace and case are ignored. ok is false for anything else.
func ParseQuery(query string) (scheme Scheme, ok bool) {
	q := strings.ToLower(strings.Join(strings.Fields(query), ""))
	if !strings.HasPrefix(q, "(") || !strings.HasSuffix(q, ")") {
		return "", false
	}
	q = strings.TrimSuffix(strings.TrimPrefix(q, "("), ")")

	name, value, found := strings.Cut(q, ":")
	if !found || name != "prefers-color-scheme" {
		return "", false
	}
	switch Scheme(value) {
	case SchemeDark, SchemeLight:
		return Scheme(value), true
	}
	return "", false
}

// matches evaluates query against a known dark setting.
func matches(query string, dark bool) bool {
	scheme, ok := ParseQuery(query)
	if !ok {
		return false
	}
	if scheme == SchemeDark {
		return dark
	}
	return !dark
}

// subscribers is the subscription list shared by Static and Watcher.
type subscribers struct {
	mu   sync.Mutex
	next int
	fns  map[int]subscriber
}

type subscriber struct {
	query string
	fn    func()
}

func (s *subscribers) add(query string, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fns == nil {
		s.fns = make(map[int]subscriber)
	}
	id := s.next
	s.next++
	s.fns[id] = subscriber{query: query, fn: fn}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.fns, id)
	}
}

// notify calls every subscriber with a color-scheme query, outside the lock.
func (s *subscribers) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.fns))
	for _, sub := range s.fns {
		if _, ok := ParseQuery(sub.query); ok {
			fns = append(fns, sub.fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// DefaultPollInterval is how often the shared watcher re-reads the OS setting.
const DefaultPollInterval = 2 * time.Second

var (
	defaultOnce    sync.Once
	defaultWatcher *Watcher
)

// Default returns the process-wide OS watcher, starting its poll loop on
// first use. It runs for the lifetime of the process.
func Default() *Watcher {
	defaultOnce.Do(func() {
		defaultWatcher = NewWatcher(OSDetector(), DefaultPollInterval)
		go defaultWatcher.Run(context.Background())
	})
	return defaultWatcher
}
