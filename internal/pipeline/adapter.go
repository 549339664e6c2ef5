package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/stateair-etl/internal/domain"
	"github.com/couchcryptid/stateair-etl/internal/observability"
	"github.com/couchcryptid/stateair-etl/internal/units"
)

// Fetcher retrieves a set of kind-keyed feed URLs. Missing feeds map to "".
type Fetcher interface {
	FetchAll(ctx context.Context, urls map[domain.Kind]string) (map[domain.Kind]string, error)
}

// Converter rewrites units and values of a complete measurement list.
type Converter interface {
	Convert(ctx context.Context, ms []domain.Measurement) ([]domain.Measurement, error)
}

// Adapter turns one StateAir source into normalized measurements:
// fetch both feeds, parse, resolve against the directory, build records, convert units.
type Adapter struct {
	fetcher   Fetcher
	directory *domain.Directory
	converter Converter
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewAdapter creates an Adapter. A nil converter uses units.Converter.
func NewAdapter(f Fetcher, dir *domain.Directory, c Converter, logger *slog.Logger, metrics *observability.Metrics) *Adapter {
	if c == nil {
		c = units.Converter{}
	}
	return &Adapter{
		fetcher:   f,
		directory: dir,
		converter: c,
		logger:    logger,
		metrics:   metrics,
	}
}

// FetchData runs the adapter for src. On failure the error is always a
// *domain.AdapterError and no measurements are returned.
func (a *Adapter) FetchData(ctx context.Context, src domain.Source) (domain.Result, error) {
	if err := src.Validate(); err != nil {
		return domain.Result{}, a.fail(src, domain.FetchError, err)
	}

	bodies, err := a.fetcher.FetchAll(ctx, src.KindURLs())
	if err != nil {
		return domain.Result{}, a.fail(src, domain.FetchError, err)
	}

	measurements, err := a.normalize(src, bodies)
	if err != nil {
		return domain.Result{}, a.fail(src, domain.ErrorKindOf(err), err)
	}

	converted, err := a.convert(ctx, measurements)
	if err != nil {
		return domain.Result{}, a.fail(src, domain.UnknownError, err)
	}

	return domain.Result{Name: src.Name, Measurements: converted}, nil
}

// normalize parses every fetched body in kind order and builds the flat
// measurement list. Panics are reported as unknown errors.
func (a *Adapter) normalize(src domain.Source, bodies map[domain.Kind]string) (out []domain.Measurement, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = domain.NewAdapterError(domain.UnknownError, fmt.Errorf("normalize panic: %v", r))
		}
	}()

	out = make([]domain.Measurement, 0)
	for _, kind := range domain.Kinds {
		body, ok := bodies[kind]
		if !ok {
			continue
		}

		feed, err := domain.ParseFeed(body)
		if err != nil {
			return nil, domain.NewAdapterError(domain.ParseError, fmt.Errorf("%s: %w", kind, err))
		}
		a.checkStation(src, kind, feed)

		ms, dropped, err := domain.BuildMeasurements(feed, kind, a.directory)
		if err != nil {
			return nil, domain.NewAdapterError(domain.ParseError, err)
		}
		if dropped > 0 {
			a.metrics.MeasurementsDropped.WithLabelValues("malformed_value").Add(float64(dropped))
			a.logger.Warn("dropped malformed readings",
				"source", src.URL,
				"kind", kind,
				"station", feed.Station,
				"dropped", dropped,
			)
		}
		a.metrics.MeasurementsBuilt.WithLabelValues(string(kind)).Add(float64(len(ms)))
		out = append(out, ms...)
	}
	return out, nil
}

// checkStation reports feeds whose station cannot be fully resolved.
func (a *Adapter) checkStation(src domain.Source, kind domain.Kind, feed domain.Feed) {
	if len(feed.Items) == 0 {
		return
	}
	_, hasZone := a.directory.Timezone(feed.Station)
	_, hasCoords := a.directory.Coordinates(feed.Station)
	if hasZone && hasCoords {
		return
	}
	a.metrics.UnknownStations.Inc()
	a.logger.Warn("station not in directory",
		"source", src.URL,
		"kind", kind,
		"station", feed.Station,
		"has_timezone", hasZone,
		"has_coordinates", hasCoords,
	)
}

func (a *Adapter) convert(ctx context.Context, ms []domain.Measurement) (out []domain.Measurement, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("convert panic: %v", r)
		}
	}()
	out, err = a.converter.Convert(ctx, ms)
	if err != nil {
		return nil, fmt.Errorf("convert units: %w", err)
	}
	return out, nil
}

func (a *Adapter) fail(src domain.Source, kind domain.ErrorKind, cause error) *domain.AdapterError {
	var ae *domain.AdapterError
	if errors.As(cause, &ae) {
		cause = ae.Err
	}
	a.metrics.AdapterFailures.WithLabelValues(string(kind)).Inc()
	a.logger.Error("adapter failed", "source", src.URL, "kind", kind, "error", cause)
	return domain.NewAdapterError(kind, cause)
}
