// Package server exposes the exporter over HTTP: Prometheus metrics, a
// health probe and the latest snapshot as JSON.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/agbru/zergmon/internal/logging"
	"github.com/agbru/zergmon/internal/metrics"
	"github.com/agbru/zergmon/internal/sysmon"
)

// Timeouts for the HTTP server.
const (
	ReadHeaderTimeout = 5 * time.Second
	WriteTimeout      = 10 * time.Second
	ShutdownTimeout   = 5 * time.Second
)

// Server serves the exporter endpoints.
type Server struct {
	addr     string
	exporter *metrics.Exporter
	metrics  *Metrics
	security SecurityConfig
	logger   logging.Logger
}

// New creates a server for exp listening on addr.
func New(addr string, exp *metrics.Exporter, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Server{
		addr:     addr,
		exporter: exp,
		metrics:  NewMetrics(exp),
		security: DefaultSecurityConfig(),
		logger:   logger,
	}
}

// Handler returns the routed, middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", s.wrap(s.handleMetrics))
	mux.HandleFunc("/healthz", s.wrap(s.handleHealth))
	mux.HandleFunc("/snapshot", s.wrap(s.handleSnapshot))
	return mux
}

func (s *Server) wrap(h http.HandlerFunc) http.HandlerFunc {
	return SecurityMiddleware(s.security, s.metricsMiddleware(h))
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: ReadHeaderTimeout,
		WriteTimeout:      WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("exporter listening", logging.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("exporter stopped")
	return nil
}

// metricsMiddleware tracks in-flight and completed requests.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next(rec, r)
		s.metrics.ObserveRequest(r.URL.Path, rec.code)
	}
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		s.logger.Debug("rejected method", logging.String("method", r.Method), logging.String("path", r.URL.Path))
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	snap, id, ok := s.exporter.Latest()
	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no snapshot yet"})
		return
	}
	if err := json.NewEncoder(w).Encode(sysmon.NewReading(id, snap)); err != nil {
		s.logger.Error("encoding snapshot", err)
	}
}

func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}
