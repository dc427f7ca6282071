// Package main runs the todos service: it wires dependencies with samber/do,
// opens the configured store, seeds it, serves the HTTP API and shuts down
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
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	adapthttp "github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/http"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/http/handlers"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/http/middleware"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/app"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/platform/config"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/platform/health"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/platform/logging"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/platform/telemetry"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	storeOpenTimeout      = 30 * time.Second
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
		return errors.New("APP_PROFILE must name a config profile: local, dev or prod")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx := context.Background()
	providers, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flushTelemetry(providers, logger)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.metrics)
	registerDependencies(injector, cfg, logger)

	backend, err := do.Invoke[*storeBackend](injector)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.Store.Backend, err)
	}
	defer closeStore(backend, logger)

	if err := seedStore(ctx, cfg.Store.SeedFile, backend.store, logger); err != nil {
		return err
	}

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(backend.store)

	return serve(server, logger)
}

// serve runs the server until SIGINT/SIGTERM or a listener failure, then
// drains in-flight requests.
func serve(server *adapthttp.Server, logger *slog.Logger) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	select {
	case <-sigCtx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("draining server", slog.Any("error", err))
	}
	<-serverErr

	logger.Info("server stopped")
	return nil
}

// otelProviders keeps the SDK providers for the final flush. Both are nil
// when telemetry is disabled; metrics is always set.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		errs = append(errs, o.tracer.Shutdown(ctx))
	}
	if o.meter != nil {
		errs = append(errs, o.meter.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{metrics: telemetry.NoopMetrics()}, nil
	}

	tc := cfg.Telemetry
	p := &otelProviders{}

	var err error
	if p.tracer, err = telemetry.InitTracer(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint); err != nil {
		return nil, fmt.Errorf("tracer: %w", err)
	}
	if p.meter, err = telemetry.InitMeter(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint); err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("meter: %w", err)
	}
	if p.metrics, err = telemetry.NewMetrics(p.meter, tc.ServiceName); err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("instruments: %w", err)
	}
	return p, nil
}

func flushTelemetry(providers *otelProviders, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()
	if err := providers.Shutdown(ctx); err != nil {
		logger.Error("flushing telemetry", slog.Any("error", err))
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*storeBackend, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		ctx, cancel := context.WithTimeout(context.Background(), storeOpenTimeout)
		defer cancel()
		return openStore(ctx, cfg, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		backend := do.MustInvoke[*storeBackend](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTodoService(backend.store, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Health.CheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		return handlers.NewTodoHandler(do.MustInvoke[ports.TodoService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		todoH := do.MustInvoke[*handlers.TodoHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(todoH, healthH,
			middleware.Stack(logger, metrics, cfg.Server.WriteTimeout)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
