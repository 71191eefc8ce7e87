package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func withOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	out := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	SetOutput(out)
	t.Cleanup(func() {
		SetOutput(nil)
		SetEnabled(false)
	})
	return &buf
}

func TestLogDisabledWritesNothing(t *testing.T) {
	buf := withOutput(t)
	SetEnabled(false)

	LogTheme("Theme applied", map[string]interface{}{"mode": "dark"})

	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty while disabled", buf.String())
	}
}

func TestLogWritesCategoryAndDetails(t *testing.T) {
	buf := withOutput(t)
	SetEnabled(true)

	LogStorage("Failed to read stored theme mode", map[string]interface{}{
		"key":   "theme",
		"error": "boom",
	})

	got := buf.String()
	for _, want := range []string{"Failed to read stored theme mode", "category=storage", "key=theme", "error=boom"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}

func TestKeyvalsSorted(t *testing.T) {
	kv := keyvals(CategoryTheme, map[string]interface{}{"b": 2, "a": 1})
	want := []interface{}{"category", CategoryTheme, "a", 1, "b", 2}
	if len(kv) != len(want) {
		t.Fatalf("keyvals = %v, want %v", kv, want)
	}
	for i := range want {
		if kv[i] != want[i] {
			t.Errorf("keyvals[%d] = %v, want %v", i, kv[i], want[i])
		}
	}
}

func TestIsEnabled(t *testing.T) {
	t.Cleanup(func() { SetEnabled(false) })

	SetEnabled(true)
	if !IsEnabled() {
		t.Error("IsEnabled() = false after SetEnabled(true)")
	}
	SetEnabled(false)
	if IsEnabled() {
		t.Error("IsEnabled() = true after SetEnabled(false)")
	}
}
