package httpadapter_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/couchcryptid/stateair-etl/internal/adapter/httpadapter"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

type mockTrigger struct {
	calls int
	err   error
}

func (m *mockTrigger) RunNow() error {
	m.calls++
	return m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(srv *httpadapter.Server, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestHealthzReturns200(t *testing.T) {
	srv := httpadapter.NewServer(":0", &mockReadiness{}, prometheus.NewRegistry(), nil, discardLogger())
	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/healthz").Code)
}

func TestReadyz(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"ready", nil, http.StatusOK},
		{"not ready", errors.New("no source has been loaded yet"), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httpadapter.NewServer(":0", &mockReadiness{err: tt.err}, prometheus.NewRegistry(), nil, discardLogger())
			assert.Equal(t, tt.want, serve(srv, http.MethodGet, "/readyz").Code)
		})
	}
}

func TestMetricsServesGatherer(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "stateair_etl_test_total", Help: "test"})
	reg.MustRegister(c)
	c.Inc()

	srv := httpadapter.NewServer(":0", &mockReadiness{}, reg, nil, discardLogger())
	rec := serve(srv, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "stateair_etl_test_total 1")
}

func TestRun(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		trig := &mockTrigger{}
		srv := httpadapter.NewServer(":0", &mockReadiness{}, prometheus.NewRegistry(), trig, discardLogger())
		assert.Equal(t, http.StatusAccepted, serve(srv, http.MethodPost, "/run").Code)
		assert.Equal(t, 1, trig.calls)
	})

	t.Run("trigger error", func(t *testing.T) {
		trig := &mockTrigger{err: errors.New("scheduler stopped")}
		srv := httpadapter.NewServer(":0", &mockReadiness{}, prometheus.NewRegistry(), trig, discardLogger())
		assert.Equal(t, http.StatusServiceUnavailable, serve(srv, http.MethodPost, "/run").Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		trig := &mockTrigger{}
		srv := httpadapter.NewServer(":0", &mockReadiness{}, prometheus.NewRegistry(), trig, discardLogger())
		assert.Equal(t, http.StatusMethodNotAllowed, serve(srv, http.MethodGet, "/run").Code)
		assert.Zero(t, trig.calls)
	})

	t.Run("no trigger", func(t *testing.T) {
		srv := httpadapter.NewServer(":0", &mockReadiness{}, prometheus.NewRegistry(), nil, discardLogger())
		assert.Equal(t, http.StatusNotFound, serve(srv, http.MethodPost, "/run").Code)
	})
}
