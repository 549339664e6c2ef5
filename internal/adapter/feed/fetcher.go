package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/couchcryptid/stateair-etl/internal/domain"
	"github.com/couchcryptid/stateair-etl/internal/observability"
)

// Getter retrieves the body at a URL, returning ErrNotFound when the resource
// does not exist.
type Getter interface {
	Get(ctx context.Context, url string) (string, error)
}

// FetchFailure reports the first feed of a set that failed for a reason other
// than not-found.
type FetchFailure struct {
	Kind domain.Kind
	URL  string
	Err  error
}

func (e *FetchFailure) Error() string {
	return fmt.Sprintf("fetch %s feed %s: %v", e.Kind, e.URL, e.Err)
}

func (e *FetchFailure) Unwrap() error { return e.Err }

// Fetcher retrieves the sibling feeds of one post concurrently.
type Fetcher struct {
	getter  Getter
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewFetcher creates a Fetcher on top of getter.
func NewFetcher(getter Getter, logger *slog.Logger, metrics *observability.Metrics) *Fetcher {
	return &Fetcher{getter: getter, logger: logger, metrics: metrics}
}

// FetchAll retrieves every URL in parallel and returns the bodies keyed by
// kind. Missing feeds map to an empty body. Any other failure aborts the set
// and no bodies are returned. The first failure cancels the remaining
// requests; their errors are discarded and only the first is reported.
func (f *Fetcher) FetchAll(ctx context.Context, urls map[domain.Kind]string) (map[domain.Kind]string, error) {
	kinds := make([]domain.Kind, 0, len(urls))
	for k := range urls {
		kinds = append(kinds, k)
	}
	bodies := make([]string, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			body, err := f.fetchOne(gctx, kind, urls[kind])
			if err != nil {
				return err
			}
			bodies[i] = body
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[domain.Kind]string, len(kinds))
	for i, kind := range kinds {
		out[kind] = bodies[i]
	}
	return out, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, kind domain.Kind, url string) (string, error) {
	start := time.Now()
	body, err := f.getter.Get(ctx, url)
	f.metrics.FeedFetchDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		f.metrics.FeedFetches.WithLabelValues(string(kind), "ok").Inc()
		return body, nil
	case errors.Is(err, ErrNotFound):
		f.metrics.FeedFetches.WithLabelValues(string(kind), "not_found").Inc()
		f.logger.Debug("feed not found", "kind", kind, "url", url)
		return "", nil
	default:
		f.metrics.FeedFetches.WithLabelValues(string(kind), "error").Inc()
		return "", &FetchFailure{Kind: kind, URL: url, Err: err}
	}
}
