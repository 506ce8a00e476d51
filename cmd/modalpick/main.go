package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/modalpick/internal/config"
	"github.com/jask/modalpick/internal/database"
	"github.com/jask/modalpick/internal/database/repository"
	"github.com/jask/modalpick/internal/form"
	"github.com/jask/modalpick/internal/logging"
	"github.com/jask/modalpick/internal/telemetry"
	"github.com/jask/modalpick/internal/transition"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "modalpick:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	req, err := cfg.Transition.Request()
	if err != nil {
		return err
	}

	logger, logFile, err := logging.New(logging.Config{Path: cfg.Log.Path, Level: cfg.Log.Level, Version: Version})
	if err != nil {
		return err
	}
	defer logFile.Close()

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    "modalpick",
		ServiceVersion: Version,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		Enabled:        cfg.Telemetry.Enabled,
	})
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("telemetry shutdown")
		}
	}()

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info().Str("style", string(req.Style)).Dur("duration", req.Duration).Msg("starting")

	model := form.New(ctx, form.Options{
		Request: req,
		Locale:  cfg.UI.Locale,
		FPS:     cfg.UI.FPS,
		Store:   repository.NewSubmissionRepo(db),
		Logger:  logger,
		SaveStyle: func(style transition.Style) error {
			cfg.Transition.Style = string(style)
			return config.Save(cfg)
		},
		DriverOptions: []transition.Option{
			transition.WithTracer(tp.Tracer),
			transition.WithMeter(tp.Meter),
		},
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program exited")
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
