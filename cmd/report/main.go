package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/noah-isme/toko-billing/internal/config"
	"github.com/noah-isme/toko-billing/internal/obs"
	"github.com/noah-isme/toko-billing/internal/records"
	"github.com/noah-isme/toko-billing/internal/report"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().
		Str("env", cfg.AppEnv).
		Str("run_id", uuid.NewString()).
		Logger()

	if cfg.TracingEnabled {
		shutdown, err := obs.InitTracer(context.Background(), obs.TracingConfig{
			ServiceName:   "billing-report",
			Endpoint:      cfg.OTLPEndpoint,
			SamplingRatio: cfg.TracingSamplingRatio,
			Environment:   cfg.AppEnv,
		})
		if err != nil {
			logger.Error().Err(err).Msg("initialise tracing")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("shutdown tracer")
				}
			}()
		}
	}

	registry := prometheus.NewRegistry()
	metrics := obs.NewReportMetrics(cfg.MetricsNamespace, registry)

	engine := &report.Engine{
		Source:  records.NewDirSource(cfg.DataDir),
		Policy:  cfg.Policy(),
		Logger:  logger,
		Metrics: metrics,
		Out:     os.Stdout,
	}
	result, genErr := engine.Generate(context.Background())

	if cfg.MetricsTextfile != "" {
		if err := obs.WriteTextfile(registry, cfg.MetricsTextfile); err != nil {
			logger.Error().Err(err).Msg("write metrics")
		}
	}
	if genErr != nil {
		return genErr
	}
	if cfg.OutputFile != "" {
		if err := os.WriteFile(cfg.OutputFile, []byte(result+"\n"), 0o644); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}
	}
	return nil
}
