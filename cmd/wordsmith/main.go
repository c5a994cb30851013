package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mlorentedev/wordsmith/internal/config"
	"github.com/mlorentedev/wordsmith/internal/server"
	"github.com/mlorentedev/wordsmith/internal/telemetry"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	envPath := flag.String("env", ".env", "path to a .env file (ignored when missing)")
	useMock := flag.Bool("mock", false, "use mock adapter instead of real LLM backends")
	port := flag.Int("port", 0, "override listen port")
	flag.Parse()

	if err := config.LoadDotEnv(*envPath); err != nil {
		fmt.Fprintf(os.Stderr, "env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	if err := run(cfg, *useMock); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, useMock bool) error {
	if cfg.Tracing {
		shutdown, err := telemetry.Init(context.Background(), "wordsmith", version, nil)
		if err != nil {
			return fmt.Errorf("tracing: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				slog.Warn("tracing shutdown", "error", err)
			}
		}()
		slog.Info("tracing enabled")
	}

	adapters, models, defaultModel, err := buildAdapters(cfg, useMock)
	if err != nil {
		return err
	}
	slog.Info("models configured", "count", len(models), "default", defaultModel)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.SetupMux(adapters, models, defaultModel, version),
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		slog.Info("wordsmith api listening", "addr", addr, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-done:
	}
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
