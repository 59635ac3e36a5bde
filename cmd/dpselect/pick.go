package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/dpselect/internal/catalog"
	"github.com/jask/dpselect/internal/logging"
	"github.com/jask/dpselect/internal/selector"
	"github.com/jask/dpselect/internal/service"
	"github.com/jask/dpselect/internal/tui"
)

func newPickCmd() *cobra.Command {
	var (
		mode     string
		defaults []string
	)
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick data products interactively",
		Long: `Open an incremental search over the catalog and print the fully-qualified names
of the picked data products, one per line.

Type to search, tab to toggle the highlighted product, enter to confirm, esc to cancel.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name := mode
			if name == "" {
				name = cfg.Selector.Mode
			}
			m, err := selector.ParseMode(name)
			if err != nil {
				return err
			}

			// the full-screen UI owns the terminal
			logFile, err := logging.ToFile(cfg.Log.File)
			if err != nil {
				return err
			}
			defer logFile.Close()

			src, closer, err := service.SourceFor(cfg)
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			events := tui.NewEvents()
			settings := append(events.Settings(),
				selector.WithMode(m),
				selector.WithDebounce(cfg.Selector.Debounce),
				selector.WithDefaultValue(defaults...),
				selector.WithLogger(logging.Logger),
			)
			sel := selector.New[catalog.DataProduct](
				&service.Products{Source: src, PageSize: cfg.Selector.PageSize},
				settings...,
			)
			defer sel.Close()

			app := tui.New[catalog.DataProduct](ctx, sel, events, tui.Options{
				Title:       "Data products",
				Placeholder: "Search data products...",
			})
			if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run picker: %w", err)
			}
			if !app.Confirmed() {
				logging.Debug("pick cancelled")
				return nil
			}
			values := sel.Values()
			if n := len(values) - len(app.Selection()); n > 0 {
				logging.Warn("picked values not among the loaded options", "unresolved", n)
			}
			for _, fqn := range values {
				fmt.Fprintln(cmd.OutOrStdout(), fqn)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "selection mode: multiple or single (default: selector.mode)")
	cmd.Flags().StringSliceVar(&defaults, "default", nil, "fully-qualified names committed before the first load")
	return cmd
}
