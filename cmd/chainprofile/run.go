package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/askiada/go-chain-profile/internal/log"
	"github.com/askiada/go-chain-profile/pkg/profile"
	"github.com/askiada/go-chain-profile/pkg/transform"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Stream events from stdin through the configured profiles",
	Long: `Reads one event per line from stdin, in the form "<kind> <value>" where kind is one of
handler-state, handler-command, item-command or item-state, and prints every emission as
"<profile> <method> <value>".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

		cfg, err := loadConfigFile(configPath)
		if err != nil {
			return err
		}
		if metricsAddr == "" {
			metricsAddr = cfg.MetricsAddr
		}
		// The --log-level flag wins over the file.
		if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
			format, _ := cmd.Flags().GetString("log-format")
			log.Setup(cfg.LogLevel, format)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		reg := prometheus.NewRegistry()
		metrics, err := profile.NewMetrics(reg)
		if err != nil {
			return err
		}
		if metricsAddr != "" {
			shutdown := serveMetrics(metricsAddr, reg)
			defer shutdown()
		}

		registry := transform.NewDefaultRegistry()
		factory, err := profile.NewFactory(registry, profile.WithMetrics(metrics))
		if err != nil {
			return err
		}
		r, err := newRunner(cfg, factory, concurrency)
		if err != nil {
			return err
		}

		log.WithComponent("cli").Info("profiles loaded",
			"count", len(r.profiles), "transformations", registry.Len(), "config", configPath)

		return r.run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func serveMetrics(addr string, reg *prometheus.Registry) func() {
	logger := log.WithComponent("metrics")
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("unable to shutdown metrics server", "error", err)
		}
	}
}

func init() {
	runCmd.Flags().StringP("config", "c", "profiles.yaml", "Profiles configuration file")
	runCmd.Flags().Int("concurrency", 0, "Maximum number of profiles handling an event at the same time (0 means no limit)")
	runCmd.Flags().String("metrics-addr", "", "Address serving Prometheus metrics, e.g. :2112")
	rootCmd.AddCommand(runCmd)
}
