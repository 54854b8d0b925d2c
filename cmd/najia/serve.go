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

	"github.com/aretw0/najia/internal/presentation/tui"
	httpAdapter "github.com/aretw0/najia/pkg/adapters/http"
	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Starts the najia engine as a JSON API over HTTP, with a live cast stream at
/v1/events. Prometheus metrics are served on the API listener, or on their own
listener when metrics_addr is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); cmd.Flags().Changed("addr") {
			cfg.HTTP.Addr = addr
		}

		var metrics *observability.Metrics
		var hooks []domain.LifecycleHooks
		if cfg.HTTP.Metrics {
			metrics = observability.NewMetrics(prometheus.NewRegistry())
			hooks = append(hooks, metrics.Hooks())
		}

		c, err := newCaster(cmd, hooks...)
		if err != nil {
			return err
		}
		defer c.close()

		opts := []httpAdapter.Option{httpAdapter.WithLogger(logger)}
		if metrics != nil && cfg.HTTP.MetricsAddr == "" {
			opts = append(opts, httpAdapter.WithMetrics(metrics.Handler()))
		}

		servers := []*http.Server{{
			Addr:              cfg.HTTP.Addr,
			Handler:           httpAdapter.NewHandler(c.engine, opts...),
			ReadHeaderTimeout: 10 * time.Second,
		}}
		if metrics != nil && cfg.HTTP.MetricsAddr != "" {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			servers = append(servers, &http.Server{
				Addr:              cfg.HTTP.MetricsAddr,
				Handler:           mux,
				ReadHeaderTimeout: 10 * time.Second,
			})
		}

		tui.PrintBanner(cmd.ErrOrStderr())

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServers(ctx, servers)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Address to listen on (overrides http.addr)")
}

// runServers serves until ctx is canceled or one listener fails, then shuts
// every listener down.
func runServers(ctx context.Context, servers []*http.Server) error {
	g, gCtx := errgroup.WithContext(ctx)

	for _, srv := range servers {
		g.Go(func() error {
			logger.Info("listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listener %s: %w", srv.Addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("graceful shutdown of %s: %w", srv.Addr, err))
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
