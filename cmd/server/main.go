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

	adapthttp "github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/http"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/http/handlers"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/http/middleware"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/clients/webhook"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/store"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/app"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/platform/config"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/platform/health"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/platform/httpclient"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/platform/logging"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/platform/telemetry"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second

	// webhookPeerName names the webhook client in traces, metrics and
	// health results. Its health check is optional for readiness.
	webhookPeerName = "validation-webhook"
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
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	db := do.MustInvoke[*store.Store](injector)
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("closing store", slog.Any("error", err))
		}
	}()

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(db)
	if notifier, ok := do.MustInvoke[ports.ValidationNotifier](injector).(ports.HealthChecker); ok {
		registry.Register(notifier)
	}

	logger.Info("service starting",
		slog.String("profile", profile),
		slog.String("database_driver", cfg.Database.Driver),
		slog.Bool("webhook_enabled", cfg.Webhook.Enabled),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Persistence. One Store serves every repository port.
	do.Provide(injector, func(_ do.Injector) (*store.Store, error) {
		return store.Open(ctx, cfg.Database)
	})
	do.Provide(injector, func(i do.Injector) (ports.OrganizationRepository, error) {
		return do.MustInvoke[*store.Store](i), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.OrderRepository, error) {
		return do.MustInvoke[*store.Store](i), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.DesignJobRepository, error) {
		return do.MustInvoke[*store.Store](i), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.ValidationRepository, error) {
		return do.MustInvoke[*store.Store](i), nil
	})

	// Outbound validation webhook.
	do.Provide(injector, func(i do.Injector) (ports.ValidationNotifier, error) {
		if !cfg.Webhook.Enabled {
			return webhook.NewNoopNotifier(logger), nil
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(httpclient.Options{
			Name:           webhookPeerName,
			Timeout:        cfg.Webhook.Timeout,
			Retry:          cfg.Webhook.Retry,
			CircuitBreaker: cfg.Webhook.CircuitBreaker,
			RateLimit:      cfg.Webhook.RateLimit,
		}, metrics, logger)
		return webhook.NewNotifier(client, cfg.Webhook.URL, cfg.Webhook.Secret, logger), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.ValidationService, error) {
		return app.NewValidationService(
			do.MustInvoke[ports.OrderRepository](i),
			do.MustInvoke[ports.DesignJobRepository](i),
			do.MustInvoke[ports.ValidationRepository](i),
			cfg.Validation,
			logger,
			app.WithNotifier(do.MustInvoke[ports.ValidationNotifier](i)),
			app.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.OrganizationService, error) {
		return app.NewOrganizationService(do.MustInvoke[ports.OrganizationRepository](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.OrderService, error) {
		return app.NewOrderService(
			do.MustInvoke[ports.OrderRepository](i),
			do.MustInvoke[ports.OrganizationRepository](i),
			do.MustInvoke[ports.DesignJobRepository](i),
			do.MustInvoke[ports.ValidationService](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DesignJobService, error) {
		return app.NewDesignJobService(
			do.MustInvoke[ports.DesignJobRepository](i),
			do.MustInvoke[ports.OrderRepository](i),
			do.MustInvoke[ports.ValidationService](i),
			logger,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// Inbound HTTP.
	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		return adapthttp.Handlers{
			Organizations: handlers.NewOrganizationHandler(do.MustInvoke[ports.OrganizationService](i)),
			Orders:        handlers.NewOrderHandler(do.MustInvoke[ports.OrderService](i)),
			DesignJobs:    handlers.NewDesignJobHandler(do.MustInvoke[ports.DesignJobService](i)),
			Validation:    handlers.NewValidationHandler(do.MustInvoke[ports.ValidationService](i)),
			Health:        handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i), webhookPeerName),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.AppContext(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
