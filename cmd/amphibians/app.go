package main

import (
	"context"
	"fmt"
	"time"

	"amphibians/internal/amphibian"
	"amphibians/internal/config"
	"amphibians/internal/imageprobe"
	"amphibians/internal/metrics"
	"amphibians/internal/state"
	"amphibians/internal/trace"

	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// app owns the long-lived components shared by the TUI and the list command.
type app struct {
	log     zerolog.Logger
	tracing *trace.Provider
	metrics *metrics.Server
	holder  *state.Holder
	prober  *imageprobe.Prober // nil when image checks are disabled
}

// start wires tracing, metrics, the repository and the state holder.
// The holder begins fetching immediately.
func start(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app, error) {
	a := &app{log: log}

	tp, err := trace.Setup(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("tracing: %w", err)
	}
	a.tracing = tp

	if cfg.MetricsAddr != "" {
		srv := metrics.NewServer(cfg.MetricsAddr, log)
		if err := srv.Start(); err != nil {
			a.Close()
			return nil, fmt.Errorf("metrics: %w", err)
		}
		a.metrics = srv
	}

	repoOpts := []amphibian.Option{amphibian.WithTracerProvider(tp.TracerProvider())}
	if cfg.RequestTimeout > 0 {
		repoOpts = append(repoOpts, amphibian.WithTimeout(cfg.RequestTimeout))
	}
	repo := amphibian.NewNetworkRepository(cfg.BaseURL, cfg.Endpoint, repoOpts...)

	if cfg.ProbeImages {
		a.prober = imageprobe.New(cfg.ProbeTimeout)
	}

	a.holder = state.New(ctx, repo,
		state.WithLogger(log),
		state.WithTracerProvider(tp.TracerProvider()),
	)
	return a, nil
}

// Close stops the holder and flushes telemetry.
func (a *app) Close() {
	if a.holder != nil {
		a.holder.Close()
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if a.metrics != nil {
		if err := a.metrics.Stop(ctx); err != nil {
			a.log.Warn().Err(err).Msg("metrics server shutdown")
		}
	}
	if err := a.tracing.Shutdown(ctx); err != nil {
		a.log.Warn().Err(err).Msg("tracer shutdown")
	}
}
