package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/netsketch/netsketch/internal/server"
	"github.com/netsketch/netsketch/pkg/config"
)

// shutdownTimeout bounds graceful shutdown after an interrupt.
const shutdownTimeout = 10 * time.Second

// newServeCmd creates the serve command hosting the browser editor.
func newServeCmd() *cobra.Command {
	var (
		addr       string
		noCache    bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive browser editor",
		Long: `Serve hosts the diagram editor over HTTP. Diagrams live in memory for
the lifetime of the session and are never written to disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}
			sessionTTL, err := cfg.SessionTTL()
			if err != nil {
				return err
			}

			runner := newRunner(ctx, cfg, noCache)
			defer runner.Close()

			srv := server.New(server.Config{
				Runner:     runner,
				Logger:     logger,
				SessionTTL: sessionTTL,
			})
			srv.StartJanitor(ctx)

			httpSrv := &http.Server{
				Addr:              addr,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- httpSrv.ListenAndServe()
			}()

			printInfo("Editor listening on http://localhost%s", addr)
			logger.Info("server started", "addr", addr)

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return httpSrv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, e.g. :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path")

	return cmd
}
