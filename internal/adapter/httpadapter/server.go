package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Trigger starts an out-of-schedule pipeline run without waiting for it.
type Trigger interface {
	RunNow() error
}

// Server exposes health, readiness, metrics, and manual-run HTTP endpoints.
type Server struct {
	httpServer *http.Server
	trigger    Trigger
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics, and
// POST /run routes. A nil gatherer serves the default registry; a nil
// trigger leaves /run unregistered.
func NewServer(addr string, ready sharedobs.ReadinessChecker, gatherer prometheus.Gatherer, trigger Trigger, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		trigger: trigger,
		logger:  logger,
	}

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	if trigger != nil {
		mux.HandleFunc("POST /run", s.handleRun)
	}

	return s
}

func (s *Server) handleRun(w http.ResponseWriter, _ *http.Request) {
	if err := s.trigger.RunNow(); err != nil {
		s.logger.Error("manual run failed to start", "error", err)
		http.Error(w, "run could not be started", http.StatusServiceUnavailable)
		return
	}
	s.logger.Info("manual run triggered")
	w.WriteHeader(http.StatusAccepted)
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}
