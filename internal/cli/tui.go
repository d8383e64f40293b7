package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Alp4ka/pagetable/internal/tui"
)

const tuiCmdName = "tui"

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   tuiCmdName,
		Short: "Browse users in the terminal",
		Long:  "Browse users in the terminal. Logs are dropped unless --log-file is set.",
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

			p := tea.NewProgram(
				tui.New(tbl),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err = p.Run(); err != nil {
				return fmt.Errorf("terminal UI failed: %w", err)
			}

			return nil
		},
	}
}
