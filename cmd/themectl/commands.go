package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/peternagy/thememode/internal/theme"
)

var (
	modeColor  = color.New(color.FgCyan, color.Bold)
	darkColor  = color.New(color.FgMagenta)
	lightColor = color.New(color.FgYellow)
)

func colorFor(m theme.Mode) *color.Color {
	switch m {
	case theme.Dark:
		return darkColor
	case theme.Light:
		return lightColor
	}
	return modeColor
}

func printApplied(out io.Writer, s *session) {
	requested := s.manager.GetTheme()
	effective := s.manager.EffectiveTheme()
	_, _ = fmt.Fprintf(out, "Theme set to %s (effective %s)\n",
		colorFor(requested).Sprint(requested), colorFor(effective).Sprint(effective))
}

func newGetCmd(o *cliOptions) *cobra.Command {
	var effective bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the requested theme mode",
		Long: `Print the requested theme mode: light, dark or system.

With --effective, print the resolved light or dark value instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			mode := s.manager.GetTheme()
			if effective {
				mode = s.manager.EffectiveTheme()
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), mode)
			return nil
		},
	}
	cmd.Flags().BoolVar(&effective, "effective", false, "Print the resolved light/dark value")
	return cmd
}

func newSetCmd(o *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "set <light|dark|system>",
		Short:     "Set and persist the theme mode",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark), string(theme.System)},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := theme.ParseMode(args[0])
			if err != nil {
				return err
			}

			s, err := o.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.manager.SetTheme(mode); err != nil {
				return err
			}
			printApplied(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newToggleCmd(o *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Long: `Switch between light and dark.

When the mode is system, the value the OS currently resolves to is flipped
into an explicit light or dark choice.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.manager.ToggleTheme(); err != nil {
				return err
			}
			printApplied(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

var statusBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

var statusLabel = lipgloss.NewStyle().Bold(true).Width(11)

func newStatusCmd(o *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the theme state and where it is applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			target := s.cfg.Element
			if target == "" {
				target = "(document root)"
			}
			document := s.doc.Path()
			if document == "" {
				document = "(in memory)"
			}
			darkClass := "off"
			if s.cfg.DarkClassEnabled() {
				darkClass = "on"
			}

			rows := [][2]string{
				{"Mode", string(s.manager.GetTheme())},
				{"Effective", string(s.manager.EffectiveTheme())},
				{"Storage", s.cfg.Storage},
				{"System", s.cfg.System},
				{"Document", document},
				{"Element", target},
				{"Attribute", s.cfg.Attribute},
				{"Dark class", darkClass},
			}
			lines := make([]string, 0, len(rows))
			for _, r := range rows {
				lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, statusLabel.Render(r[0]), r[1]))
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), statusBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
			return nil
		},
	}
}

func newWatchCmd(o *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow OS theme changes until interrupted",
		Long: `Apply the theme and keep following OS color scheme changes, rewriting the
document on every change, until interrupted. An explicit light or dark
choice is left alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := o.openSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Watching system theme (mode %s, effective %s)\n",
				s.manager.GetTheme(), s.manager.EffectiveTheme())

			<-ctx.Done()
			s.logger.Debug("Stopped watching", "reason", ctx.Err())
			return nil
		},
	}
}
