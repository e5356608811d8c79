package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drishti-ops/drishti/internal/analysis"
	"github.com/drishti-ops/drishti/internal/api"
	"github.com/drishti-ops/drishti/internal/camera"
	"github.com/drishti-ops/drishti/internal/config"
	"github.com/drishti-ops/drishti/internal/escalation"
	"github.com/drishti-ops/drishti/internal/metrics"
	"github.com/drishti-ops/drishti/internal/orchestrator"
	"github.com/drishti-ops/drishti/internal/session"
	"github.com/drishti-ops/drishti/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	logger.Info("starting Drishti Event AI",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
		slog.Int("zones", len(cfg.ZoneNames)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Frame source
	var frames camera.FrameSource
	switch cfg.CameraSource {
	case "mjpeg":
		src := camera.NewMJPEGSource(cfg.CameraURLs, cfg.FrameMaxWidth, cfg.FrameMaxHeight, logger)
		src.Start(ctx)
		defer src.Stop()
		frames = src
	default:
		frames = camera.NewSyntheticSource(len(cfg.ZoneNames), cfg.FrameMaxWidth, cfg.FrameMaxHeight)
	}

	// Analysis gateway
	gw, err := analysis.NewGateway(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build analysis gateway: %w", err)
	}

	// Aggregation store and metrics
	st := store.New(cfg.ZoneNames, cfg.AlertLogCap, cfg.DensityHistoryCap)
	m := metrics.New()
	st.Subscribe(m.StoreListener())

	// Escalation path
	dialer := escalation.NewWebhookDialer(cfg.TelephonyURL, logger)
	siren := escalation.NewWebhookSiren(cfg.SirenURL, logger)
	escalator := escalation.New(dialer, siren, cfg.EmergencyNumber, logger)

	// Scan orchestrator
	orch := orchestrator.New(st, gw, frames, escalator, m, logger, orchestrator.Options{
		MatchThreshold: cfg.MatchConfidenceThreshold,
		GatewayTimeout: time.Duration(cfg.GatewayTimeoutSec) * time.Second,
	})

	// Operator sessions
	sessions := session.NewManager(logger)

	// Setup router
	router := api.NewRouter(logger, &api.Dependencies{
		Store:        st,
		Orchestrator: orch,
		Sessions:     sessions,
		Escalator:    escalator,
		Frames:       frames,
		Metrics:      m,
	})
	router.Setup()

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("server listening", slog.String("addr", addr))
		if err := router.Listen(addr); err != nil {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("shutting down server...")
	if err := router.Shutdown(); err != nil {
		logger.Error("shutdown error", slog.Any("error", err))
	}

	logger.Info("server stopped")

	return nil
}
