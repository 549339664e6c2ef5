package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"

	"github.com/couchcryptid/stateair-etl/internal/domain"
)

const defaultSources = "http://dosairnowdata.org/dos/RSS/NewDelhi/NewDelhi-PM2.5.xml," +
	"http://dosairnowdata.org/dos/RSS/Beijing/Beijing-PM2.5.xml"

// Config holds all service settings, populated from environment variables.
type Config struct {
	Sources       []domain.Source
	DirectoryFile string
	FetchInterval time.Duration

	KafkaBrokers   []string
	KafkaSinkTopic string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Feed transport.
	HTTPTimeout        time.Duration
	BreakerMaxFailures uint32
	BreakerTimeout     time.Duration
}

// Load reads configuration from environment variables, applying defaults where
// unset. A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	fetchInterval, err := parsePositiveDuration("FETCH_INTERVAL", "1h")
	if err != nil {
		return nil, err
	}
	httpTimeout, err := parsePositiveDuration("HTTP_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}
	breakerTimeout, err := parsePositiveDuration("BREAKER_TIMEOUT", "1m")
	if err != nil {
		return nil, err
	}
	breakerMaxFailures, err := parseBreakerMaxFailures()
	if err != nil {
		return nil, err
	}

	sources, err := parseSources(sharedcfg.EnvOrDefault("SOURCES", defaultSources))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Sources:       sources,
		DirectoryFile: os.Getenv("DIRECTORY_FILE"),
		FetchInterval: fetchInterval,

		KafkaBrokers:   sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSinkTopic: sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "air-quality-measurements"),

		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		HTTPTimeout:        httpTimeout,
		BreakerMaxFailures: breakerMaxFailures,
		BreakerTimeout:     breakerTimeout,
	}

	if len(cfg.Sources) == 0 {
		return nil, errors.New("SOURCES is required")
	}
	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required")
	}

	return cfg, nil
}

// parseSources splits a comma-separated list of PM2.5 feed URLs into validated sources.
func parseSources(raw string) ([]domain.Source, error) {
	var sources []domain.Source
	for _, u := range strings.Split(raw, ",") {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		src := domain.Source{URL: u}
		if err := src.Validate(); err != nil {
			return nil, fmt.Errorf("invalid SOURCES: %w", err)
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func parsePositiveDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseBreakerMaxFailures() (uint32, error) {
	s := sharedcfg.EnvOrDefault("BREAKER_MAX_FAILURES", "5")
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 {
		return 0, errors.New("invalid BREAKER_MAX_FAILURES")
	}
	return uint32(n), nil
}
