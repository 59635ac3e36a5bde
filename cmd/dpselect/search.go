package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jask/dpselect/internal/catalog"
	"github.com/jask/dpselect/internal/logging"
	"github.com/jask/dpselect/internal/selector"
	"github.com/jask/dpselect/internal/service"
)

func newSearchCmd() *cobra.Command {
	var pages int
	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Print matching data products",
		Long: `Print data products matching term, one page at a time.

The first page is loaded as the picker would on a new term; each further page is
appended as if the list were scrolled to the bottom.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")
			src, closer, err := service.SourceFor(cfg)
			if err != nil {
				return err
			}
			defer closer.Close()

			var fetchErr error
			sel := selector.New[catalog.DataProduct](
				&service.Products{Source: src, PageSize: cfg.Selector.PageSize},
				selector.WithLogger(logging.Logger),
				selector.WithNotifier(selector.NotifyFunc(func(err error) { fetchErr = err })),
			)
			defer sel.Close()

			ctx := cmd.Context()
			sel.Load(ctx, term)
			for i := 1; i < pages && fetchErr == nil && sel.Snapshot().HasMore(); i++ {
				sel.LoadMore(ctx)
			}
			if fetchErr != nil {
				return fetchErr
			}

			snap := sel.Snapshot()
			tbl := table.New().
				Border(lipgloss.HiddenBorder()).
				Headers("DOMAIN", "NAME", "FQN")
			for _, opt := range snap.Options {
				tbl.Row(opt.Context, opt.Label, opt.Value)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl.String())
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d\n", len(snap.Options), snap.Paging.Total)
			return nil
		},
	}
	cmd.Flags().IntVarP(&pages, "pages", "p", 1, "number of pages to load")
	return cmd
}
