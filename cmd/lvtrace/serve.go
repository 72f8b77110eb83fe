// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtrace/execution"
	"github.com/katalvlaran/lvtrace/internal/config"
	"github.com/katalvlaran/lvtrace/internal/httpapi"
	"github.com/katalvlaran/lvtrace/internal/logging"
	"github.com/katalvlaran/lvtrace/internal/metrics"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long:  `Starts the lvtrace HTTP server, exposing the algorithm catalog and stored executions as JSON.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			level, err := logging.ParseLevel(cfg.LogLevel())
			if err != nil {
				return err
			}
			log := logging.New(level)

			store, closeStore, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			m := metrics.New()
			svc := execution.NewService(store,
				execution.WithLogger(log),
				execution.WithMetrics(m),
				execution.WithMaxSteps(cfg.MaxSteps()),
			)
			srv := &http.Server{
				Addr:    cfg.Addr(),
				Handler: httpapi.NewHandler(svc, httpapi.WithMetrics(m), httpapi.WithLogger(log)),
			}

			return serve(srv, cfg, log)
		},
	}
	cmd.Flags().String("config", "", "Path to a YAML config file")
	cmd.Flags().String("addr", "", "Listen address, overriding the config")
	cmd.Flags().String("store", "", "Store driver (memory or redis), overriding the config")

	return cmd
}

// loadConfig reads --config when given and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	if driver, _ := cmd.Flags().GetString("store"); driver != "" {
		cfg.Store.Driver = driver
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}

	return cfg, nil
}

func openStore(ctx context.Context, cfg *config.Config) (execution.Store, func(), error) {
	switch cfg.Driver() {
	case config.DriverMemory:
		return execution.NewMemoryStore(execution.WithMemoryTTL(cfg.TTL())), func() {}, nil
	case config.DriverRedis:
		store := execution.NewRedisStore(
			cfg.RedisAddr(), cfg.Store.Redis.Password, cfg.Store.Redis.DB,
			execution.WithRedisTTL(cfg.TTL()),
			execution.WithRedisPrefix(cfg.RedisPrefix()),
		)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("redis %s: %w", cfg.RedisAddr(), err)
		}
		return store, func() { _ = store.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver())
}

// serve runs srv until it fails or the process receives SIGINT/SIGTERM, then
// shuts down within the configured budget.
func serve(srv *http.Server, cfg *config.Config, log *slog.Logger) error {
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr, "store", cfg.Driver())
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case sig := <-shutdown:
		log.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Warn("graceful shutdown incomplete", "timeout", cfg.ShutdownTimeout(), "error", err)
			return srv.Close()
		}
		log.Info("server stopped")
		return nil
	}
}
