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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mmynk/scoreboard/internal/config"
	"github.com/mmynk/scoreboard/internal/fixtures"
	"github.com/mmynk/scoreboard/internal/registry"
	"github.com/mmynk/scoreboard/internal/storage/sqlite"
	"github.com/mmynk/scoreboard/pkg/logging"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(2)
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	// The registry is fully seeded before anything else can reach it.
	reg := registry.New()
	if err := seed(reg, cfg); err != nil {
		return err
	}
	slog.Info("Registry ready", "active_matches", reg.Len())

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           newHandler(reg, store, promReg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", server.Addr, "url", fmt.Sprintf("http://localhost%s", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("Server closed")
	return nil
}

// seed loads the configured fixtures into a fresh registry.
func seed(reg *registry.Registry, cfg config.Config) error {
	if cfg.NoSeed {
		return nil
	}

	var (
		seedFixtures []registry.Fixture
		err          error
	)
	if cfg.SeedFile != "" {
		seedFixtures, err = fixtures.Load(cfg.SeedFile)
	} else {
		seedFixtures, err = fixtures.Default()
	}
	if err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}

	if err := reg.Seed(seedFixtures); err != nil {
		return fmt.Errorf("failed to seed registry: %w", err)
	}
	return nil
}
