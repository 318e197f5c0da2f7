package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"offeradmin/internal/logger"
	"offeradmin/internal/offerserver"
	"offeradmin/internal/offerstore"
)

// config holds the parsed CLI configuration for the dev service.
type config struct {
	addr     string
	seed     bool
	logLevel string
}

func parseFlags() config {
	var cfg config

	flag.StringVar(&cfg.addr, "addr", offerserver.DefaultAddr, "listen address")
	flag.BoolVar(&cfg.seed, "seed", false, "start with sample offers")
	flag.StringVar(&cfg.logLevel, "log-level", "info", "debug, info, warn or error")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: offers-dev [flags]\n\n")
		fmt.Fprintf(os.Stderr, "offers-dev serves an in-memory Offers Service at /offers\n")
		fmt.Fprintf(os.Stderr, "for running the admin console locally.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	log, err := logger.New(os.Stderr, cfg.logLevel)
	if err != nil {
		return err
	}

	store := offerstore.New()
	if cfg.seed {
		seeded := store.Seed(offerstore.SampleDrafts()...)
		log.Info("seeded store", "offers", len(seeded))
	}
	store.SetOnChange(func() {
		log.Debug("store changed", "offers", store.Len())
	})

	srv := offerserver.NewServer(store, cfg.addr, log.With("component", "offerserver"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
