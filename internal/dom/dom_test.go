package dom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peternagy/thememode/internal/core"
)

const page = `<!DOCTYPE html>
<html lang="en">
<head><title>t</title></head>
<body><div id="app" class="shell"></div><div class="panel"></div></body>
</html>`

func TestResolve(t *testing.T) {
	doc, err := ParseString(page)
	require.NoError(t, err)

	tests := []struct {
		name     string
		selector string
		wantTag  string
		wantID   string
	}{
		{"empty selector is root", "", "html", ""},
		{"id selector", "#app", "div", "app"},
		{"class selector takes first match", "div", "div", "app"},
		{"no match falls back to root", "#missing", "html", ""},
		{"invalid selector falls back to root", "[[[", "html", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := doc.Resolve(tt.selector)
			assert.Equal(t, tt.wantTag, el.Tag())
			id, _ := el.Attribute("id")
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestElementAttributeAndClass(t *testing.T) {
	doc, err := ParseString(page)
	require.NoError(t, err)
	el := doc.Resolve("#app")

	el.SetAttribute("data-theme", "dark")
	el.SetClass("dark", true)

	v, ok := el.Attribute("data-theme")
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
	assert.True(t, el.HasClass("dark"))
	assert.True(t, el.HasClass("shell"), "existing classes are kept")

	el.SetClass("dark", false)
	assert.False(t, el.HasClass("dark"))
	assert.True(t, el.HasClass("shell"))

	assert.Contains(t, doc.String(), `data-theme="dark"`)
}

func TestNewDocumentRoot(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	assert.Equal(t, "html", root.Tag())

	root.SetAttribute("data-theme", "light")
	assert.Contains(t, doc.String(), `<html data-theme="light">`)
}

func TestLoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path())

	doc.Resolve("#app").SetAttribute("data-theme", "dark")
	require.NoError(t, doc.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `data-theme="dark"`))

	reloaded, err := Load(path)
	require.NoError(t, err)
	v, _ := reloaded.Resolve("#app").Attribute("data-theme")
	assert.Equal(t, "dark", v)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.html"))
	assert.Error(t, err)
}

func TestSaveWithoutPath(t *testing.T) {
	assert.Error(t, NewDocument().Save())
}

func TestEventElement(t *testing.T) {
	rec := &core.RecordingEmitter{}
	shadow := NewDocument().Root()
	el := &EventElement{Emitter: rec, Selector: "#app", Shadow: shadow}

	el.SetAttribute("data-theme", "dark")
	el.SetClass("dark", true)

	events := rec.Events()
	require.Len(t, events, 2)
	assert.Equal(t, EventSetAttribute, events[0].Name)
	assert.Equal(t, AttributeChange{Selector: "#app", Name: "data-theme", Value: "dark"}, events[0].Data)
	assert.Equal(t, EventSetClass, events[1].Name)
	assert.Equal(t, ClassChange{Selector: "#app", Name: "dark", On: true}, events[1].Data)

	assert.True(t, shadow.HasClass("dark"))
}
