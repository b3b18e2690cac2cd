// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/project-actions-service/internal/adapters/http"
	"github.com/jsamuelsen11/project-actions-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-actions-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-actions-service/internal/adapters/store"
	"github.com/jsamuelsen11/project-actions-service/internal/app"
	"github.com/jsamuelsen11/project-actions-service/internal/platform/config"
	"github.com/jsamuelsen11/project-actions-service/internal/platform/health"
	"github.com/jsamuelsen11/project-actions-service/internal/platform/logging"
	"github.com/jsamuelsen11/project-actions-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-actions-service/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flushTelemetry(otel, logger)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	registerDependencies(ctx, injector, cfg, logger)

	// Resolving the server wires the whole graph, which opens and migrates
	// the database.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	db := do.MustInvoke[*store.Store](injector)
	defer closeStore(db, logger)

	do.MustInvoke[ports.HealthRegistry](injector).Register(db)

	logger.Info("starting project-actions service",
		slog.String("profile", profile),
		slog.String("database", cfg.Database.Path),
	)
	return serveUntilSignal(server, logger)
}

// serveUntilSignal runs server until SIGINT/SIGTERM, then drains in-flight
// requests. Deferred cleanup in run closes the store after the drain.
func serveUntilSignal(server *adapthttp.Server, logger *slog.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

func closeStore(db *store.Store, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("database close error", slog.Any("error", err))
	}
}

func flushTelemetry(p *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*store.Store, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return store.Open(ctx, cfg.Database, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectStore, error) {
		return store.NewProjectStore(do.MustInvoke[*store.Store](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ActionStore, error) {
		return store.NewActionStore(do.MustInvoke[*store.Store](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		projects := do.MustInvoke[ports.ProjectStore](i)
		return app.NewProjectService(projects, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ActionService, error) {
		actions := do.MustInvoke[ports.ActionStore](i)
		projects := do.MustInvoke[ports.ProjectStore](i)
		return app.NewActionService(actions, projects, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		svc := do.MustInvoke[ports.ProjectService](i)
		return handlers.NewProjectHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ActionHandler, error) {
		svc := do.MustInvoke[ports.ActionService](i)
		return handlers.NewActionHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		projH := do.MustInvoke[*handlers.ProjectHandler](i)
		actH := do.MustInvoke[*handlers.ActionHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(projH, actH, healthH,
			middleware.Stack(logger, metrics, cfg.Server.RequestTimeout)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
