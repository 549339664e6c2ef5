package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "stateair_etl"

// Metrics holds the Prometheus counters, histograms, and gauges for the adapter and its runner.
type Metrics struct {
	// Feed retrieval.
	FeedFetches       *prometheus.CounterVec   // labels: kind={pm25,o3}, outcome={ok,not_found,error}
	FeedFetchDuration *prometheus.HistogramVec // labels: kind

	// Normalization.
	MeasurementsBuilt   *prometheus.CounterVec // labels: kind
	MeasurementsDropped *prometheus.CounterVec // labels: reason
	UnknownStations     prometheus.Counter
	AdapterFailures     *prometheus.CounterVec // labels: kind={fetch,parse,unknown}

	// Runner and sink.
	MessagesProduced prometheus.Counter
	LoadErrors       prometheus.Counter
	RunDuration      prometheus.Histogram
	PipelineRunning  prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	return NewMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegisterer creates all metrics and registers them with reg.
func NewMetricsWithRegisterer(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.FeedFetches,
		m.FeedFetchDuration,
		m.MeasurementsBuilt,
		m.MeasurementsDropped,
		m.UnknownStations,
		m.AdapterFailures,
		m.MessagesProduced,
		m.LoadErrors,
		m.RunDuration,
		m.PipelineRunning,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		FeedFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_fetches_total",
			Help:      "Feed retrievals by kind and outcome.",
		}, []string{"kind", "outcome"}),
		FeedFetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_fetch_duration_seconds",
			Help:      "Duration of a single feed retrieval.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"kind"}),
		MeasurementsBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "measurements_built_total",
			Help:      "Measurements normalized from feed items, by kind.",
		}, []string{"kind"}),
		MeasurementsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "measurements_dropped_total",
			Help:      "Feed items that did not produce a measurement, by reason.",
		}, []string{"reason"}),
		UnknownStations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_stations_total",
			Help:      "Feeds whose station name is missing from the directory.",
		}),
		AdapterFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "adapter_failures_total",
			Help:      "Adapter invocations that failed, by error kind.",
		}, []string{"kind"}),
		MessagesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_produced_total",
			Help:      "Total messages written to the sink topic.",
		}),
		LoadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "load_errors_total",
			Help:      "Failed writes to the sink topic.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of one pass over every configured source.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 while a run is in progress, 0 otherwise.",
		}),
	}
}
