package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alp4ka/pagetable/internal/config"
	"github.com/Alp4ka/pagetable/internal/httpapi"
	"github.com/Alp4ka/pagetable/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve pages of users as JSON",
		Long: `Serve pages of users as JSON on GET /users?page=N.

SQL sources are queried per request with LIMIT/OFFSET. Other sources are
loaded once at startup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var pages httpapi.PageFunc
			if a.cfg.IsSQL() {
				db, err := newGormSource(a.cfg)
				if err != nil {
					return err
				}
				pages = httpapi.GormPages(db, a.cfg.ItemsPerPage)
			} else {
				src, err := newSource(a.cfg)
				if err != nil {
					return err
				}

				tbl := a.newTable()
				defer tbl.Close()

				ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.FetchTimeout)
				defer cancel()
				tbl.Load(ctx, src)

				pages = httpapi.TablePages(tbl)
			}

			return a.serve(cmd.Context(), httpapi.NewRouter(pages, logging.Component(a.logger, "http")))
		},
	}

	cmd.Flags().String(config.KeyAddr, ":8080", "listen address")
	_ = a.v.BindPFlag(config.KeyAddr, cmd.Flags().Lookup(config.KeyAddr))

	return cmd
}

// serve runs the server until ctx is done, then shuts it down gracefully.
func (a *app) serve(ctx context.Context, handler http.Handler) error {
	srv := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info().Str("addr", a.cfg.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("cannot shut down server: %w", err)
	}
	a.logger.Info().Msg("server stopped")

	return nil
}
