// Package config loads console settings from flags, the process environment,
// and an optional .env file, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvOffersURL    = "OFFERADMIN_OFFERS_URL"
	EnvLogFile      = "OFFERADMIN_LOG_FILE"
	EnvLogLevel     = "OFFERADMIN_LOG_LEVEL"
	EnvTimeout      = "OFFERADMIN_TIMEOUT"
	EnvOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvServiceName  = "OTEL_SERVICE_NAME"
)

// Defaults.
const (
	DefaultOffersURL = "http://localhost:3000"
	DefaultLogFile   = "offeradmin.log"
	DefaultLogLevel  = "info"
	DefaultEnvFile   = ".env"
)

// Config holds the console settings.
type Config struct {
	OffersURL    string        // Offers Service root; requests go to {OffersURL}/offers
	LogFile      string        // diagnostics destination (stdout is the TUI)
	LogLevel     string        // debug, info, warn, error
	Timeout      time.Duration // per-request timeout; 0 = none
	OTLPEndpoint string        // empty disables trace export
	ServiceName  string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		OffersURL: DefaultOffersURL,
		LogFile:   DefaultLogFile,
		LogLevel:  DefaultLogLevel,
	}
}

// Parse builds the configuration for a run with the given command-line args.
// getenv is normally os.Getenv. Values from the .env file fill in only what the
// environment leaves unset; explicitly passed flags win over both. A missing
// default .env file is ignored; a missing -env-file is an error.
func Parse(name string, args []string, getenv func(string) string, output io.Writer) (Config, error) {
	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fset.SetOutput(output)
	}

	var (
		envFile   string
		offersURL string
		logFile   string
		logLevel  string
		timeout   time.Duration
	)
	fset.StringVar(&envFile, "env-file", DefaultEnvFile, "dotenv file with OFFERADMIN_* settings")
	fset.StringVar(&offersURL, "offers-url", DefaultOffersURL, "Offers Service base URL (env "+EnvOffersURL+")")
	fset.StringVar(&logFile, "log-file", DefaultLogFile, "file receiving diagnostics (env "+EnvLogFile+")")
	fset.StringVar(&logLevel, "log-level", DefaultLogLevel, "debug, info, warn or error (env "+EnvLogLevel+")")
	fset.DurationVar(&timeout, "timeout", 0, "per-request timeout, 0 for none (env "+EnvTimeout+")")
	fset.Usage = func() {
		fmt.Fprintf(fset.Output(), "Usage: %s [flags]\n\n", name)
		fmt.Fprintf(fset.Output(), "Terminal console for managing offers in the Offers Service.\n\n")
		fmt.Fprintf(fset.Output(), "Flags:\n")
		fset.PrintDefaults()
	}

	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	explicit := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	fileVals, err := readEnvFile(envFile, explicit["env-file"])
	if err != nil {
		return Config{}, err
	}
	lookup := func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fileVals[key]
	}

	cfg, err := fromLookup(lookup)
	if err != nil {
		return Config{}, err
	}

	if explicit["offers-url"] {
		cfg.OffersURL = offersURL
	}
	if explicit["log-file"] {
		cfg.LogFile = logFile
	}
	if explicit["log-level"] {
		cfg.LogLevel = logLevel
	}
	if explicit["timeout"] {
		cfg.Timeout = timeout
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fromLookup(lookup func(string) string) (Config, error) {
	cfg := Default()
	if v := lookup(EnvOffersURL); v != "" {
		cfg.OffersURL = v
	}
	if v := lookup(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := lookup(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := lookup(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	cfg.OTLPEndpoint = lookup(EnvOTLPEndpoint)
	cfg.ServiceName = lookup(EnvServiceName)
	return cfg, nil
}

func readEnvFile(path string, required bool) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	vals, err := godotenv.Read(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("env file %q: %w", path, err)
	}
	return vals, nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.OffersURL)
	if err != nil {
		return fmt.Errorf("offers url %q: %w", c.OffersURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("offers url %q: must be an absolute http(s) URL", c.OffersURL)
	}
	if c.LogFile == "" {
		return errors.New("log file must not be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout %s must not be negative", c.Timeout)
	}
	return nil
}
