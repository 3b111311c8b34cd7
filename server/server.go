// Package server exposes route search over HTTP.
//
// Routes:
//
//	GET /route?start=<id>&goal=<id>  → 200 {"path":[…],"cost":…,"expanded":…}
//	GET /map                         → 200 map statistics
//	GET /healthz                     → 200 "ok"
//	GET /metrics                     → Prometheus exposition (if a gatherer is set)
//
// Search failures map to status codes: malformed IDs 400, unknown
// intersections 404, unreachable goal 422, expansion limit 503, anything else 500.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/routeplan/astar"
	"github.com/katalvlaran/routeplan/metrics"
	"github.com/katalvlaran/routeplan/roadmap"
)

// Default tracer name for route spans.
const defaultTracerName = "github.com/katalvlaran/routeplan/server"

// Server serves route requests against one road map.
type Server struct {
	m          *roadmap.Map[int]
	mapName    string
	searchOpts []astar.Option[int]
	collector  *metrics.Collector
	gatherer   prometheus.Gatherer
	logger     *slog.Logger
	tracer     trace.Tracer
	router     chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger (default: slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMapName labels the map in responses and logs.
func WithMapName(name string) Option {
	return func(s *Server) { s.mapName = name }
}

// WithSearchOptions sets options applied to every search.
func WithSearchOptions(opts ...astar.Option[int]) Option {
	return func(s *Server) { s.searchOpts = append(s.searchOpts, opts...) }
}

// WithMetrics records every search in c and serves g on /metrics.
func WithMetrics(c *metrics.Collector, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.collector = c
		s.gatherer = g
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Server) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// New builds a Server for m.
func New(m *roadmap.Map[int], opts ...Option) *Server {
	s := &Server{
		m:      m,
		logger: slog.Default(),
		tracer: otel.Tracer(defaultTracerName),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealth)
	r.Get("/map", s.handleMap)
	r.Get("/route", s.handleRoute)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	s.router = r

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully within five seconds.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "map", s.mapName)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down", "addr", addr)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}

		return nil
	}
}

type routeResponse struct {
	Map      string  `json:"map,omitempty"`
	Path     []int   `json:"path"`
	Cost     float64 `json:"cost"`
	Expanded int     `json:"expanded"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Outcome string `json:"outcome,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleMap(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Name string `json:"name,omitempty"`
		roadmap.Stats
	}{Name: s.mapName, Stats: s.m.Stats()})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "route")
	defer span.End()

	// 1) Parse both endpoints.
	start, err := parseID(r, "start")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	goal, err := parseID(r, "goal")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	span.SetAttributes(attribute.Int("route.start", start), attribute.Int("route.goal", goal))

	// 2) Search, feeding metrics hooks when configured.
	opts := s.searchOpts
	if s.collector != nil {
		opts = append(append([]astar.Option[int](nil), opts...), metrics.Options[int](s.collector)...)
	}
	began := time.Now()
	res, err := astar.Search[int](s.m, start, goal, opts...)
	outcome := metrics.Outcome(err)
	if s.collector != nil {
		metrics.Record(s.collector, res, err)
	}
	span.SetAttributes(attribute.String("route.outcome", outcome))

	// 3) Respond.
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		status := statusFor(err)
		s.logger.InfoContext(ctx, "route failed",
			"start", start, "goal", goal, "outcome", outcome, "status", status,
			"request_id", middleware.GetReqID(ctx))
		writeJSON(w, status, errorResponse{Error: err.Error(), Outcome: outcome})
		return
	}

	span.SetAttributes(attribute.Int("route.expanded", res.Expanded), attribute.Float64("route.cost", res.Cost))
	s.logger.DebugContext(ctx, "route found",
		"start", start, "goal", goal, "hops", len(res.Path)-1, "cost", res.Cost,
		"expanded", res.Expanded, "took", time.Since(began))
	writeJSON(w, http.StatusOK, routeResponse{
		Map:      s.mapName,
		Path:     res.Path,
		Cost:     res.Cost,
		Expanded: res.Expanded,
	})
}

func parseID(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, fmt.Errorf("missing %q parameter", key)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %q parameter %q: not an integer", key, raw)
	}

	return id, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, astar.ErrInvalidNode):
		return http.StatusNotFound
	case errors.Is(err, astar.ErrNoPathFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, astar.ErrExpansionLimit):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
