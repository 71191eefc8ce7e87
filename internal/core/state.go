// Package core provides shared application state and event handling.
package core

import (
	"context"
	"sync"
)

// AppState holds the shared application state.
type AppState struct {
	ConfigDir     string             // Config directory path
	Ctx           context.Context    // Wails context
	Cancel        context.CancelFunc // Stops background watchers
	DisableEvents bool               // Disable event emission (for tests)
	Emitter       EventEmitter       // Event emitter for UI notifications
	Mu            sync.RWMutex
}

// NewAppState creates a new AppState. Events are dropped until an emitter
// is installed at startup.
func NewAppState() *AppState {
	return &AppState{Emitter: &NoopEventEmitter{}}
}

// EmitEvent safely emits an event through the emitter.
func (s *AppState) EmitEvent(eventName string, data interface{}) {
	s.Mu.RLock()
	disabled, emitter := s.DisableEvents, s.Emitter
	s.Mu.RUnlock()

	if disabled || emitter == nil {
		return
	}
	emitter.Emit(eventName, data)
}

// Emit lets an AppState be used wherever an EventEmitter is expected.
func (s *AppState) Emit(eventName string, data interface{}) {
	s.EmitEvent(eventName, data)
}

// SetCancel stores the cancel function for background work.
func (s *AppState) SetCancel(cancel context.CancelFunc) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.Cancel = cancel
}

// StopBackground cancels background work started for this state, if any.
func (s *AppState) StopBackground() {
	s.Mu.Lock()
	cancel := s.Cancel
	s.Cancel = nil
	s.Mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
