package theme

import (
	"github.com/peternagy/thememode/internal/dom"
	"github.com/peternagy/thememode/internal/storage"
	"github.com/peternagy/thememode/internal/system"
)

const (
	DefaultStorageKey  = "theme"
	DefaultSystemQuery = "(prefers-color-scheme: dark)"
	DefaultAttribute   = "data-theme"

	// DarkClass is the class toggled on the target element for the dark theme.
	DarkClass = "dark"
)

// Store is the persistence surface for the requested mode.
// Get returns "" with a nil error when the key is absent.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Element is the target the effective mode is reflected onto.
type Element interface {
	SetAttribute(name, value string)
	SetClass(name string, on bool)
}

// Options configures a Manager. Every field is optional.
type Options struct {
	// Mode is the initial requested mode. Light and Dark override any persisted
	// value; System or the zero value defer to storage.
	Mode Mode

	// Store persists the requested mode. Nil selects the default file store.
	Store Store
	// DisableStorage turns off every read and write to Store.
	DisableStorage bool
	StorageKey     string

	SystemQuery string
	// Preference answers SystemQuery. Nil selects the shared OS watcher.
	Preference system.Preference

	// Element takes precedence over Document and Selector.
	Element Element
	// Document is searched with Selector; a selector matching nothing
	// resolves to the document root.
	Document *dom.Document
	Selector string

	Attribute        string
	DisableDarkClass bool

	// OnApply is called with the effective mode after every successful apply.
	OnApply func(effective Mode)
}

func (o Options) withDefaults() Options {
	if o.StorageKey == "" {
		o.StorageKey = DefaultStorageKey
	}
	if o.SystemQuery == "" {
		o.SystemQuery = DefaultSystemQuery
	}
	if o.Attribute == "" {
		o.Attribute = DefaultAttribute
	}
	if o.DisableStorage {
		o.Store = nil
	} else if o.Store == nil {
		o.Store = storage.NewFileStore(storage.DefaultPath())
	}
	if o.Preference == nil {
		o.Preference = system.Default()
	}
	if o.Element == nil {
		doc := o.Document
		if doc == nil {
			doc = dom.NewDocument()
		}
		o.Element = doc.Resolve(o.Selector)
	}
	if o.OnApply == nil {
		o.OnApply = func(Mode) {}
	}
	return o
}
