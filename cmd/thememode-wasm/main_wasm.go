//go:build js && wasm
// +build js,wasm

// Command thememode-wasm exposes window.thememode to the page it is loaded in.
package main

import (
	"github.com/vugu/vugu/js"

	"github.com/peternagy/thememode/internal/browser"
	"github.com/peternagy/thememode/internal/debug"
	"github.com/peternagy/thememode/internal/theme"
)

func main() {
	opts := browser.Options{}
	if cfg := js.Global().Get("thememodeConfig"); cfg.Type() == js.TypeObject {
		opts.Mode = stringField(cfg, "mode")
		opts.StorageKey = stringField(cfg, "storageKey")
		opts.SystemQuery = stringField(cfg, "systemQuery")
		opts.Selector = stringField(cfg, "el")
		opts.Attribute = stringField(cfg, "attribute")
		opts.DisableStorage = isFalse(cfg.Get("storage"))
		opts.DisableDarkClass = isFalse(cfg.Get("darkClass"))
		if cb := cfg.Get("callback"); cb.Type() == js.TypeFunction {
			opts.OnApply = func(effective theme.Mode) { cb.Invoke(string(effective)) }
		}
	}

	m, err := browser.New(opts)
	if err != nil {
		js.Global().Get("console").Call("error", err.Error())
		return
	}
	browser.Export("thememode", m)
	debug.LogTheme("thememode ready", map[string]interface{}{"mode": string(m.GetTheme())})

	select {}
}

func stringField(v js.Value, name string) string {
	f := v.Get(name)
	if f.Type() != js.TypeString {
		return ""
	}
	return f.String()
}

func isFalse(v js.Value) bool {
	return v.Type() == js.TypeBoolean && !v.Bool()
}
