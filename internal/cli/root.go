// Package cli wires configuration, logging, record sources and the
// presentation layers into the pagetable commands.
package cli

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Alp4ka/pagetable"
	"github.com/Alp4ka/pagetable/internal/config"
	"github.com/Alp4ka/pagetable/internal/logging"
	"github.com/Alp4ka/pagetable/source"
	"github.com/Alp4ka/pagetable/view"
)

// app is the state shared by the subcommands after PersistentPreRunE.
type app struct {
	v        *viper.Viper
	cfg      config.Config
	logger   zerolog.Logger
	closeLog func() error
}

// NewRootCmd creates the root command with the tui, serve and print
// subcommands. Every persistent flag can also be set through PAGETABLE_*
// environment variables, e.g. PAGETABLE_PER_PAGE.
func NewRootCmd() *cobra.Command {
	a := &app{
		v:        config.New(),
		logger:   zerolog.Nop(),
		closeLog: func() error { return nil },
	}

	cmd := &cobra.Command{
		Use:          "pagetable",
		Short:        "Paginated user table",
		Long:         "pagetable: browse a list of users page by page in the terminal, over HTTP or as plain text",
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.closeLog()
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(config.KeySource, config.SourceStatic, "record source: static, http, postgres or mysql")
	flags.String(config.KeyURL, "", "URL returning a JSON array of users (source http)")
	flags.String(config.KeyDSN, "", "database DSN (source postgres or mysql)")
	flags.String(config.KeyTable, "", "table name overriding 'users' (source postgres or mysql)")
	flags.Int(config.KeyPerPage, pagetable.DefaultItemsPerPage, "rows per page")
	flags.String(config.KeySort, "", "comma-separated orderings, e.g. 'role asc, id desc'")
	flags.Int(config.KeySeed, 95, "number of generated users (source static)")
	flags.Duration(config.KeyFetchTimeout, 30*time.Second, "timeout of the initial load")
	flags.String(config.KeyLogLevel, "info", "log level")
	flags.String(config.KeyLogFormat, logging.FormatConsole, "log format: console or json")
	flags.String(config.KeyLogFile, "", "append logs to this file instead of stderr")
	_ = a.v.BindPFlags(flags)

	cmd.AddCommand(newTUICmd(a), newServeCmd(a), newPrintCmd(a))

	return cmd
}

const rootCmdExample = `  # Browse generated users in the terminal
  pagetable tui

  # Print the third page of users sorted by role
  pagetable print --page 3 --sort 'role asc, id asc'

  # Serve users from PostgreSQL as JSON
  PAGETABLE_DSN='postgres://localhost/app' pagetable serve --source postgres`

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	if cfg.Log.File == "" {
		cfg.Log.Output = cmd.ErrOrStderr()
		if cmd.Name() == tuiCmdName {
			cfg.Log.Output = io.Discard
		}
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.closeLog = closeLog
	cmd.SetContext(logging.Component(logger, "cli").WithContext(cmd.Context()))

	return nil
}

func (a *app) newTable() *view.Table[source.User] {
	return view.New[source.User](
		view.WithItemsPerPage(a.cfg.ItemsPerPage),
		view.WithLogger(logging.Component(a.logger, "table")),
	)
}
