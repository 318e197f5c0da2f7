package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"offeradmin/internal/config"
	"offeradmin/internal/logger"
	"offeradmin/internal/offerclient"
	"offeradmin/internal/telemetry"
	"offeradmin/internal/ui"
)

func main() {
	cfg, err := config.Parse("offeradmin", os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	log, logFile, err := logger.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, err := telemetry.New(ctx, telemetry.Config{Endpoint: cfg.OTLPEndpoint, ServiceName: cfg.ServiceName})
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	client, err := offerclient.New(cfg.OffersURL,
		offerclient.WithTimeout(cfg.Timeout),
		offerclient.WithTracerProvider(tp.TracerProvider()),
	)
	if err != nil {
		return err
	}

	log.Info("starting",
		"offers_url", client.BaseURL(),
		"timeout", cfg.Timeout.String(),
		"tracing", tp.Enabled(),
	)

	model := ui.NewAppModel(client, log.With("component", "ui"), ui.WithContext(ctx)).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("program exited", "error", err)
		return err
	}
	log.Info("stopped")
	return nil
}
