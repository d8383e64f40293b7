package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alp4ka/pagetable"
	"github.com/Alp4ka/pagetable/internal/tui"
)

func newPrintCmd(a *app) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print one page of users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := newSource(a.cfg)
			if err != nil {
				return err
			}

			tbl := a.newTable()
			defer tbl.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.FetchTimeout)
			defer cancel()
			tbl.Load(ctx, src)

			select {
			case <-tbl.Done():
			case <-ctx.Done():
			}
			if err = ctx.Err(); err != nil {
				return fmt.Errorf("cannot load users: %w", err)
			}
			if err = tbl.Err(); err != nil {
				return fmt.Errorf("cannot load users: %w", err)
			}

			return tui.Render(cmd.OutOrStdout(), tbl.Navigate(pagetable.JumpTo(page)))
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page to print, clamped to the available pages")

	return cmd
}
