package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/AntonStoeckl/teamquest/eventstore/oteladapters"
	"github.com/AntonStoeckl/teamquest/eventstore/postgresengine"
	"github.com/AntonStoeckl/teamquest/teamquest/features/bundle"
	"github.com/AntonStoeckl/teamquest/teamquest/features/job/dailyrollover"
	"github.com/AntonStoeckl/teamquest/teamquest/httpapi"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/shell/config"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/shell/questcatalog"
)

const (
	instrumentationName = "github.com/AntonStoeckl/teamquest"
	telemetryFlushTime  = 5 * time.Second
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the daily rollover job",
	Long: `Run the HTTP API and the daily rollover job until SIGINT or SIGTERM.

Examples:
  # Serve with a config file
  teamquest serve --config teamquest.yaml

  # Serve with environment configuration only
  TEAMQUEST_DATABASE_DSN=postgres://... TEAMQUEST_SERVER_SESSION_SECRET=... teamquest serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	telemetry, err := config.NewTelemetry(ctx, cfg.Observability)
	if err != nil {
		return err
	}

	logger, err := config.NewZapLogger(cfg.Observability, telemetry.LoggerProvider)
	if err != nil {
		_ = telemetry.Shutdown(ctx)
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), telemetryFlushTime)
		defer cancel()

		if shutdownErr := telemetry.Shutdown(flushCtx); shutdownErr != nil {
			logger.Warn("telemetry shutdown failed", zap.Error(shutdownErr))
		}
	}()
	defer func() { _ = logger.Sync() }()

	obs := observabilityFor(cfg, telemetry)

	eventStore, closeDB, err := config.OpenEventStore(ctx, cfg.Database, storeOptions(obs)...)
	if err != nil {
		return err
	}
	defer closeDB()

	if err = eventStore.Ping(ctx); err != nil {
		return err
	}

	catalog, err := questcatalog.Load(cfg.App.CatalogPath)
	if err != nil {
		return err
	}

	handlers := bundle.New(eventStore, catalog, bundle.Options{
		InviteTTL:     cfg.App.InviteTTL,
		Observability: obs,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	server := httpapi.NewServer(handlers, httpapi.Config{
		Port:          cfg.Server.HTTPPort,
		SessionSecret: cfg.Server.SessionSecret,
		SessionTTL:    cfg.Server.SessionTTL,
		SecureCookies: cfg.Server.SecureCookies,
		AuthRateLimit: cfg.Server.AuthRateLimit,
		AuthRateBurst: cfg.Server.AuthRateBurst,
		Location:      cfg.App.Location(),
	}, logger, registry)

	job := dailyrollover.NewJob(
		handlers.ActiveTeams,
		handlers.AssignDailySet,
		logger,
		dailyrollover.WithInterval(cfg.App.RolloverInterval),
		dailyrollover.WithLocation(cfg.App.Location()),
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if startErr := server.Start(); !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}

		return nil
	})

	group.Go(func() error {
		return job.Run(groupCtx)
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

// observabilityFor returns empty Observability when OpenTelemetry is disabled,
// except for the contextual logger which then writes JSON to stdout.
func observabilityFor(cfg *config.Config, telemetry *config.Telemetry) bundle.Observability {
	obs := bundle.Observability{
		ContextualLogger: config.NewContextualLogger(cfg.Observability, telemetry.LoggerProvider),
	}

	if !cfg.Observability.Enabled {
		return obs
	}

	obs.Metrics = oteladapters.NewMetricsCollector(telemetry.MeterProvider.Meter(instrumentationName))
	obs.Tracing = oteladapters.NewTracingCollector(telemetry.TracerProvider.Tracer(instrumentationName))

	return obs
}

func storeOptions(obs bundle.Observability) []postgresengine.Option {
	options := []postgresengine.Option{postgresengine.WithContextualLogger(obs.ContextualLogger)}

	if obs.Metrics != nil {
		options = append(options, postgresengine.WithMetrics(obs.Metrics))
	}
	if obs.Tracing != nil {
		options = append(options, postgresengine.WithTracing(obs.Tracing))
	}

	return options
}
