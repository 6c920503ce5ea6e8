package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"classic-cipher-backend/handlers"
	"classic-cipher-backend/logger"
	"classic-cipher-backend/metrics"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func (a *app) serveCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "listen port (overrides CIPHER_SERVER_PORT)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	log := logger.GetDefault().With("component", "server")
	if a.cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := handlers.NewRouter(a.cfg, log, metrics.New())
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	srv := &http.Server{
		Addr:              a.cfg.Server.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Debug("Loaded configuration", "config", a.cfg.String())
	log.Info("Server starting", "addr", srv.Addr)
	log.Info("API endpoints",
		"encrypt", "POST /api/v1/cipher/encrypt",
		"decrypt", "POST /api/v1/cipher/decrypt",
		"square", "POST /api/v1/playfair/square",
		"benchmark", "GET /api/v1/benchmark",
		"stego", "POST /api/v1/stego/{insert,extract}",
		"health", "GET /api/v1/health",
		"metrics", "GET /metrics",
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
