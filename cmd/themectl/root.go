package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/peternagy/thememode/internal/config"
	"github.com/peternagy/thememode/internal/debug"
	"github.com/peternagy/thememode/internal/dom"
	"github.com/peternagy/thememode/internal/storage"
	"github.com/peternagy/thememode/internal/theme"
)

// cliOptions holds the persistent flags shared by every subcommand.
type cliOptions struct {
	configPath  string
	htmlPath    string
	selector    string
	storage     string
	storageFile string
	system      string
	debug       bool

	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	o := &cliOptions{}

	root := &cobra.Command{
		Use:   "themectl",
		Short: "Manage the light/dark/system theme of an HTML document",
		Long: `themectl keeps a requested theme mode (light, dark or system), persists it
and writes the effective mode onto an element of an HTML document as an
attribute and a "dark" class.

Settings come from config.toml in the user config directory and can be
overridden with flags.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			o.setupLogging(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&o.configPath, "config", "c", "", "Path to config.toml (default: user config dir)")
	flags.StringVar(&o.htmlPath, "html", "", "HTML document to update in place")
	flags.StringVar(&o.selector, "el", "", "Selector of the target element (default: document root)")
	flags.StringVar(&o.storage, "storage", "", "Storage backend: file, keyring, memory or none")
	flags.StringVar(&o.storageFile, "storage-file", "", "Preferences file for the file backend")
	flags.StringVar(&o.system, "system", "", "OS preference source: auto, terminal, light or dark")
	flags.BoolVar(&o.debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newGetCmd(o),
		newSetCmd(o),
		newToggleCmd(o),
		newStatusCmd(o),
		newWatchCmd(o),
	)
	return root
}

func (o *cliOptions) setupLogging(cmd *cobra.Command) {
	level := log.InfoLevel
	if o.debug {
		level = log.DebugLevel
	}
	o.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "themectl",
		Level:  level,
	})
	debug.SetOutput(o.logger)
	debug.SetEnabled(o.debug)
}

// loadConfig reads the config file and applies flag overrides.
func (o *cliOptions) loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFrom(o.configPath)
	} else {
		cfg, err = config.Load(storage.InitConfigDir())
	}
	if err != nil {
		return cfg, err
	}

	if o.selector != "" {
		cfg.Element = o.selector
	}
	if o.storage != "" {
		cfg.Storage = o.storage
	}
	if o.storageFile != "" {
		cfg.StorageFile = o.storageFile
	}
	if o.system != "" {
		cfg.System = o.system
	}
	if o.debug {
		cfg.Debug = true
	}
	return cfg, cfg.Validate()
}

// session is one manager bound to one document.
type session struct {
	cfg     config.Config
	doc     *dom.Document
	manager *theme.Manager
	logger  *log.Logger
	cancel  context.CancelFunc
}

// openSession loads the config and document and builds the manager, which
// applies the initial mode. Every apply is saved back to the HTML file.
func (o *cliOptions) openSession(ctx context.Context) (*session, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Debug {
		debug.SetEnabled(true)
	}

	doc := dom.NewDocument()
	if o.htmlPath != "" {
		doc, err = dom.Load(o.htmlPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load document: %w", err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &session{cfg: cfg, doc: doc, logger: o.logger, cancel: cancel}
	if s.logger == nil {
		s.logger = log.Default()
	}

	opts := cfg.Options(ctx)
	opts.Document = doc
	opts.OnApply = s.onApply

	m, err := theme.New(opts)
	if err != nil {
		cancel()
		return nil, err
	}
	s.manager = m
	return s, nil
}

func (s *session) onApply(effective theme.Mode) {
	if s.doc.Path() == "" {
		return
	}
	if err := s.doc.Save(); err != nil {
		s.logger.Error("Failed to save document", "path", s.doc.Path(), "error", err)
		return
	}
	debug.LogDOM("Document saved", map[string]interface{}{
		"path":      s.doc.Path(),
		"effective": string(effective),
	})
}

func (s *session) Close() {
	s.manager.Close()
	s.cancel()
}
