package core

import (
	"context"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Event names emitted to the UI.
const (
	EventThemeChanged = "theme:changed"
	EventDebugLog     = "debug:log"
)

// EventEmitter defines the interface for emitting events to the UI.
type EventEmitter interface {
	Emit(eventName string, data interface{})
}

// WailsEventEmitter emits events using the Wails runtime.
type WailsEventEmitter struct {
	Ctx context.Context
}

// Emit sends an event to the frontend via Wails runtime.
func (e *WailsEventEmitter) Emit(eventName string, data interface{}) {
	if e.Ctx != nil {
		runtime.EventsEmit(e.Ctx, eventName, data)
	}
}

// NoopEventEmitter discards every event.
type NoopEventEmitter struct{}

// Emit does nothing.
func (e *NoopEventEmitter) Emit(eventName string, data interface{}) {}

// Event is one emission captured by RecordingEmitter.
type Event struct {
	Name string
	Data interface{}
}

// RecordingEmitter keeps every emitted event in order.
type RecordingEmitter struct {
	mu     sync.Mutex
	events []Event
}

func (e *RecordingEmitter) Emit(eventName string, data interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, Event{Name: eventName, Data: data})
}

// Events returns a copy of the recorded events.
func (e *RecordingEmitter) Events() []Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Event, len(e.events))
	copy(out, e.events)
	return out
}

// Named returns the data of every event called name.
func (e *RecordingEmitter) Named(name string) []interface{} {
	var out []interface{}
	for _, ev := range e.Events() {
		if ev.Name == name {
			out = append(out, ev.Data)
		}
	}
	return out
}
