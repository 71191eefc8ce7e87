// Package debug provides category-tagged debug logging for the theme services.
package debug

import (
	"context"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/peternagy/thememode/internal/core"
)

// Categories for debug logging (must match frontend DEBUG_CATEGORIES)
const (
	CategoryTheme   = "theme"
	CategoryStorage = "storage"
	CategorySystem  = "system"
	CategoryDOM     = "dom"
	CategoryWails   = "wails"
)

// Logger provides debug logging that emits events to the frontend and,
// when an output is set, writes structured lines to it.
type Logger struct {
	ctx     context.Context
	out     *log.Logger
	enabled bool
	mu      sync.RWMutex
}

// Global logger instance
var globalLogger = &Logger{}

// Init sets the Wails context used to forward log lines to the frontend.
func Init(ctx context.Context) {
	globalLogger.mu.Lock()
	globalLogger.ctx = ctx
	globalLogger.mu.Unlock()
}

// SetOutput installs a logger that receives every debug line.
func SetOutput(out *log.Logger) {
	globalLogger.mu.Lock()
	globalLogger.out = out
	globalLogger.mu.Unlock()
}

// SetEnabled enables or disables debug logging
func SetEnabled(enabled bool) {
	globalLogger.mu.Lock()
	globalLogger.enabled = enabled
	globalLogger.mu.Unlock()
}

// IsEnabled returns whether debug logging is enabled
func IsEnabled() bool {
	globalLogger.mu.RLock()
	defer globalLogger.mu.RUnlock()
	return globalLogger.enabled
}

// Log emits a debug log line.
// category: one of the Category* constants
// message: short one-liner summary
// details: optional map with additional context (can be nil)
func Log(category, message string, details map[string]interface{}) {
	globalLogger.mu.RLock()
	enabled := globalLogger.enabled
	ctx := globalLogger.ctx
	out := globalLogger.out
	globalLogger.mu.RUnlock()

	if !enabled {
		return
	}

	if out != nil {
		out.Debug(message, keyvals(category, details)...)
	}
	if ctx != nil {
		runtime.EventsEmit(ctx, core.EventDebugLog, category, message, details)
	}
}

// keyvals flattens details into sorted key/value pairs after the category.
func keyvals(category string, details map[string]interface{}) []interface{} {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kv := make([]interface{}, 0, 2+2*len(keys))
	kv = append(kv, "category", category)
	for _, k := range keys {
		kv = append(kv, k, details[k])
	}
	return kv
}

// Convenience functions for each category

// LogTheme logs a theme-related debug message
func LogTheme(message string, details map[string]interface{}) {
	Log(CategoryTheme, message, details)
}

// LogStorage logs a storage-related debug message
func LogStorage(message string, details map[string]interface{}) {
	Log(CategoryStorage, message, details)
}

// LogSystem logs an OS preference debug message
func LogSystem(message string, details map[string]interface{}) {
	Log(CategorySystem, message, details)
}

// LogDOM logs a document-related debug message
func LogDOM(message string, details map[string]interface{}) {
	Log(CategoryDOM, message, details)
}

// LogWails logs a Wails lifecycle debug message
func LogWails(message string, details map[string]interface{}) {
	Log(CategoryWails, message, details)
}
