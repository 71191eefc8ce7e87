//go:build js && wasm
// +build js,wasm

package browser

import (
	"github.com/vugu/vugu/js"

	"github.com/peternagy/thememode/internal/theme"
)

// Export installs getTheme, setTheme and toggleTheme on window[name].
// Errors are returned to JavaScript as Error objects.
func Export(name string, m *theme.Manager) {
	api := js.Global().Get("Object").New()

	api.Set("getTheme", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return string(m.GetTheme())
	}))
	api.Set("getEffectiveTheme", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return string(m.EffectiveTheme())
	}))
	api.Set("setTheme", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		mode := ""
		if len(args) > 0 {
			mode = args[0].String()
		}
		if err := m.SetTheme(theme.Mode(mode)); err != nil {
			return jsError(err)
		}
		return nil
	}))
	api.Set("toggleTheme", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if err := m.ToggleTheme(); err != nil {
			return jsError(err)
		}
		return nil
	}))

	js.Global().Get("window").Set(name, api)
}

func jsError(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}
