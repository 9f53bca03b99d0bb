package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/spark/internal/cli"
	httpAdapter "github.com/aretw0/spark/pkg/adapters/http"
	"github.com/aretw0/spark/pkg/observability"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves resolved tokens, stylesheets, class name composition and Prometheus
metrics over HTTP. Stylesheets are cached in Redis when --redis is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		redisAddr, _ := cmd.Flags().GetString("redis")

		metrics := httpAdapter.NewMetrics()
		collector := observability.NewCollector()
		if err := collector.Register(metrics.Registry()); err != nil {
			return err
		}

		eng, logger, opts, cleanup, err := setup(cmd, cli.Overrides{Port: port, Redis: redisAddr}, collector.Hooks())
		if err != nil {
			return err
		}
		defer cleanup()

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Config.Serve.Port),
			Handler:           httpAdapter.NewHandler(eng, httpAdapter.WithLogger(logger), httpAdapter.WithMetrics(metrics)),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("Starting Spark Server", "addr", srv.Addr, "dir", opts.Config.Dir)
			serverErrors <- srv.ListenAndServe()
		}()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			logger.Info("Start shutdown")

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("Graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			logger.Info("Spark Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (default from config: 8080)")
	serveCmd.Flags().String("redis", "", "Redis address for the stylesheet cache, e.g. localhost:6379")
}
