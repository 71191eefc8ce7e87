package main

import (
	"context"
	"errors"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/peternagy/thememode/internal/config"
	"github.com/peternagy/thememode/internal/core"
	"github.com/peternagy/thememode/internal/debug"
	"github.com/peternagy/thememode/internal/dom"
	"github.com/peternagy/thememode/internal/storage"
	"github.com/peternagy/thememode/internal/theme"
	"github.com/peternagy/thememode/internal/types"
)

// =============================================================================
// Type Re-exports for Wails Binding Generation
// =============================================================================

type ThemeState = types.ThemeState
type ThemeChange = types.ThemeChange

var errThemeNotReady = errors.New("theme manager not initialized")

// =============================================================================
// App - Thin Facade for Wails Bindings
// =============================================================================

// windowThemer sets the native window chrome to match the theme.
type windowThemer interface {
	SetWindowTheme(ctx context.Context, requested, effective theme.Mode)
}

type wailsWindow struct{}

func (wailsWindow) SetWindowTheme(ctx context.Context, requested, effective theme.Mode) {
	switch {
	case requested == theme.System:
		runtime.WindowSetSystemDefaultTheme(ctx)
	case effective == theme.Dark:
		runtime.WindowSetDarkTheme(ctx)
	default:
		runtime.WindowSetLightTheme(ctx)
	}
}

// App struct holds the application state and services
type App struct {
	state  *core.AppState
	cfg    config.Config
	shadow *dom.Document // backend mirror of the frontend document
	window windowThemer

	mu    sync.RWMutex
	theme *theme.Manager
}

// NewApp creates a new App instance
func NewApp() *App {
	return &App{
		state:  core.NewAppState(),
		cfg:    config.Default(),
		window: wailsWindow{},
	}
}

// startup is called when the app starts
func (a *App) startup(ctx context.Context) {
	a.state.Ctx = ctx
	a.state.Emitter = &core.WailsEventEmitter{Ctx: ctx}
	debug.Init(ctx)

	// Initialize config directory and settings
	configDir := storage.InitConfigDir()
	a.state.ConfigDir = configDir

	cfg, err := config.Load(configDir)
	if err != nil {
		debug.LogWails("Failed to load config, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		cfg = config.Default()
	}
	debug.SetEnabled(cfg.Debug)

	watchCtx, cancel := context.WithCancel(ctx)
	a.state.SetCancel(cancel)

	if err := a.initTheme(watchCtx, cfg); err != nil {
		debug.LogWails("Failed to initialize theme", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// domReady replays the current theme once the frontend can receive events.
func (a *App) domReady(ctx context.Context) {
	a.syncFrontend()
}

// shutdown is called when the app is closing
func (a *App) shutdown(ctx context.Context) {
	if m := a.manager(); m != nil {
		m.Close()
	}
	a.state.StopBackground()
}

func (a *App) initTheme(ctx context.Context, cfg config.Config) error {
	a.cfg = cfg
	a.shadow = dom.NewDocument()

	opts := cfg.Options(ctx)
	opts.Element = &dom.EventElement{
		Emitter:  a.state,
		Selector: cfg.Element,
		Shadow:   a.shadow.Root(),
	}
	opts.OnApply = a.onThemeApplied

	m, err := theme.New(opts)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.theme = m
	a.mu.Unlock()

	// Applies made during construction skip the window; catch it up here.
	a.setWindowTheme(m.GetTheme(), m.EffectiveTheme())
	return nil
}

// manager returns the theme manager, or nil before initTheme completes.
func (a *App) manager() *theme.Manager {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.theme
}

func (a *App) onThemeApplied(effective theme.Mode) {
	if m := a.manager(); m != nil {
		a.setWindowTheme(m.GetTheme(), effective)
	}
	a.state.EmitEvent(core.EventThemeChanged, ThemeChange{Effective: string(effective)})
}

func (a *App) setWindowTheme(requested, effective theme.Mode) {
	if a.state.Ctx != nil && a.window != nil {
		a.window.SetWindowTheme(a.state.Ctx, requested, effective)
	}
}

// syncFrontend re-emits the mirrored attribute and class to the frontend.
func (a *App) syncFrontend() {
	if a.shadow == nil {
		return
	}
	root := a.shadow.Root()
	target := &dom.EventElement{Emitter: a.state, Selector: a.cfg.Element}

	if v, ok := root.Attribute(a.attribute()); ok {
		target.SetAttribute(a.attribute(), v)
	}
	if a.cfg.DarkClassEnabled() {
		target.SetClass(theme.DarkClass, root.HasClass(theme.DarkClass))
	}
	debug.LogDOM("Frontend theme synced", map[string]interface{}{
		"selector": a.cfg.Element,
	})
}

func (a *App) attribute() string {
	if a.cfg.Attribute == "" {
		return theme.DefaultAttribute
	}
	return a.cfg.Attribute
}
