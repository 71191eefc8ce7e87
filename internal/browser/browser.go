//go:build js && wasm
// +build js,wasm

package browser

import (
	"github.com/vugu/vugu/js"

	"github.com/peternagy/thememode/internal/theme"
)

// LocalStorage is a theme.Store over window.localStorage.
type LocalStorage struct{}

func (LocalStorage) Get(key string) (string, error) {
	v := js.Global().Get("window").Get("localStorage").Call("getItem", key)
	if v.Type() != js.TypeString {
		return "", nil
	}
	return v.String(), nil
}

func (LocalStorage) Set(key, value string) error {
	js.Global().Get("window").Get("localStorage").Call("setItem", key, value)
	return nil
}

// MediaQueries is a system.Preference over window.matchMedia.
type MediaQueries struct{}

func (MediaQueries) Matches(query string) bool {
	return js.Global().Get("window").Call("matchMedia", query).Get("matches").Bool()
}

func (MediaQueries) OnChange(query string, fn func()) func() {
	mql := js.Global().Get("window").Call("matchMedia", query)
	cb := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fn()
		return nil
	})
	mql.Call("addEventListener", "change", cb)

	return func() {
		mql.Call("removeEventListener", "change", cb)
		cb.Release()
	}
}

// Element is a theme.Element over a DOM node.
type Element struct {
	v js.Value
}

// Resolve returns the first element matching selector, or
// document.documentElement when the selector is empty or matches nothing.
func Resolve(selector string) *Element {
	document := js.Global().Get("document")
	if selector != "" {
		if v := document.Call("querySelector", selector); v.Type() == js.TypeObject {
			return &Element{v: v}
		}
	}
	return &Element{v: document.Get("documentElement")}
}

func (e *Element) SetAttribute(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *Element) SetClass(name string, on bool) {
	e.v.Get("classList").Call("toggle", name, on)
}

// Options holds the page-level choices exposed to JavaScript callers.
type Options struct {
	Mode             string
	DisableStorage   bool
	StorageKey       string
	SystemQuery      string
	Selector         string
	Attribute        string
	DisableDarkClass bool
	OnApply          func(effective theme.Mode)
}

// New builds a theme manager bound to the current page.
func New(o Options) (*theme.Manager, error) {
	return theme.New(theme.Options{
		Mode:             theme.Mode(o.Mode),
		Store:            LocalStorage{},
		DisableStorage:   o.DisableStorage,
		StorageKey:       o.StorageKey,
		SystemQuery:      o.SystemQuery,
		Preference:       MediaQueries{},
		Element:          Resolve(o.Selector),
		Attribute:        o.Attribute,
		DisableDarkClass: o.DisableDarkClass,
		OnApply:          o.OnApply,
	})
}
