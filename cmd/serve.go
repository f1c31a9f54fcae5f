package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/near-pool-cli/internal/adapters/httpapi"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(app *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local HTTP API and Prometheus metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if addr == "" {
				addr = app.cfg.ServeAddr
			}
			return runServe(ctx, cmd, app, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from serve.addr)")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, app *app, addr string) (retErr error) {
	controller, view, err := app.startController(ctx)
	if err != nil {
		return err
	}
	defer controller.Close()
	app.metrics.SetConnected(controller.Session().Connected())

	handler := httpapi.NewHandler(controller, view, app.logger)
	srv := httpapi.NewServer(addr, httpapi.NewRouter(handler, app.metrics.Handler()))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		serr := srv.Serve(listener)
		if serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			errCh <- serr
			return
		}
		errCh <- nil
	}()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Serving %s API on http://%s\n", app.cfg.Pool.ID, listener.Addr())
	app.logger.Info("api started", "addr", listener.Addr().String(), "pool", app.cfg.Pool.ID, "network", app.cfg.Pool.Network)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			retErr = errors.Join(retErr, fmt.Errorf("shutdown server: %w", err))
		}
		app.logger.Info("api stopped")
	}()

	select {
	case <-ctx.Done():
		return nil
	case serr := <-errCh:
		if serr != nil {
			return fmt.Errorf("server error: %w", serr)
		}
		return nil
	}
}
