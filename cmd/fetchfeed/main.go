// Command fetchfeed runs the StateAir adapter once against a single post and
// prints the normalized result as JSON. It does not publish to Kafka.
//
// Usage:
//
//	go run ./cmd/fetchfeed \
//	  -url http://dosairnowdata.org/dos/RSS/NewDelhi/NewDelhi-PM2.5.xml \
//	  -directory stations.yaml
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/couchcryptid/stateair-etl/internal/adapter/feed"
	"github.com/couchcryptid/stateair-etl/internal/config"
	"github.com/couchcryptid/stateair-etl/internal/domain"
	"github.com/couchcryptid/stateair-etl/internal/observability"
	"github.com/couchcryptid/stateair-etl/internal/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fetchfeed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	url := fs.String("url", "", "PM2.5 feed URL of the post (required)")
	name := fs.String("name", "", "source name echoed in the result")
	dirFile := fs.String("directory", "", "optional YAML station directory override")
	timeout := fs.Duration("timeout", 30*time.Second, "HTTP timeout per feed")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	raw := fs.Bool("raw", false, "skip unit conversion")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *url == "" {
		fmt.Fprintln(stderr, "fetchfeed: -url is required")
		fs.Usage()
		return 2
	}

	logger := observability.NewTextLogger(stderr, *logLevel)
	metrics := observability.NewMetricsWithRegisterer(prometheus.NewRegistry())

	directory, err := config.LoadDirectory(*dirFile)
	if err != nil {
		fmt.Fprintf(stderr, "fetchfeed: %v\n", err)
		return 1
	}

	var converter pipeline.Converter
	if *raw {
		converter = passthrough{}
	}

	client := feed.NewHTTPClient(*timeout, feed.BreakerSettings{}, logger)
	adapter := pipeline.NewAdapter(feed.NewFetcher(client, logger, metrics), directory, converter, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := adapter.FetchData(ctx, domain.Source{Name: *name, URL: *url})
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(stderr, "fetchfeed: encode result: %v\n", err)
		return 1
	}
	return 0
}

type passthrough struct{}

func (passthrough) Convert(_ context.Context, ms []domain.Measurement) ([]domain.Measurement, error) {
	return ms, nil
}
