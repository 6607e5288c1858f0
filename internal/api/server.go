// Package api is the HTTP adapter over the impact analysis engine and
// the NASA SBDB catalog proxy. Handlers parse query parameters, call
// into pure packages, and map errors onto status codes; no physics
// lives here.
package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/meteor/meteorgo/internal/auth"
	"github.com/meteor/meteorgo/internal/config"
	"github.com/meteor/meteorgo/internal/health"
	"github.com/meteor/meteorgo/internal/metrics"
	"github.com/meteor/meteorgo/internal/ratelimit"
	"github.com/meteor/meteorgo/internal/sbdb"
	"github.com/meteor/meteorgo/internal/scenario"
)

// Server holds the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a configured HTTP server.
func NewServer(cfg config.Config, catalog *sbdb.Client, logger *slog.Logger) *Server {
	h := &handlers{
		catalog:           catalog,
		runner:            scenario.NewRunner(cfg.Engine.ScenarioWorkers, cfg.Engine.DefaultPopulationDensity, logger),
		populationDensity: cfg.Engine.DefaultPopulationDensity,
		logger:            logger,
	}

	r := mux.NewRouter()
	r.HandleFunc("/", h.root).Methods(http.MethodGet)
	r.HandleFunc("/healthz", health.Healthz).Methods(http.MethodGet)
	r.HandleFunc("/readyz", health.Readyz).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/impact-analysis", h.impactAnalysis).Methods(http.MethodGet)
	v1.HandleFunc("/deflection", h.deflection).Methods(http.MethodGet)
	v1.HandleFunc("/scenarios", h.scenarios).Methods(http.MethodGet)

	// Catalog proxy routes get the per-IP limiter so one client cannot
	// exhaust the upstream SBDB quota.
	limiter := ratelimit.NewIPLimiter(rate.Limit(cfg.Catalog.RateLimitRPS), cfg.Catalog.RateLimitBurst)
	asteroids := v1.PathPrefix("/asteroids").Subrouter()
	asteroids.Use(limiter.Middleware(cfg.Server.TrustProxy))
	asteroids.HandleFunc("/autocomplete", h.autocomplete).Methods(http.MethodGet)
	asteroids.HandleFunc("/details", h.details).Methods(http.MethodGet)
	asteroids.HandleFunc("/{name}/impact-analysis", h.catalogImpactAnalysis).Methods(http.MethodGet)

	// Build middleware chain: metrics -> logging -> cors -> auth -> router.
	// CORS sits outside auth so preflights, which carry no Authorization
	// header, get answered.
	var handler http.Handler = r
	handler = auth.Middleware(auth.Config{
		Enabled: cfg.Auth.Enabled,
		Token:   cfg.Auth.Token,
	})(handler)
	handler = corsMiddleware(handler)
	handler = loggingMiddleware(logger)(handler)
	handler = metrics.Middleware(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           handler,
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: logger,
	}
}

// HTTPServer returns the underlying *http.Server for external control (e.g. shutdown).
func (s *Server) HTTPServer() *http.Server {
	return s.httpServer
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// probePath returns true for health/readiness probe paths that should not log at INFO.
func probePath(path string) bool {
	return path == "/healthz" || path == "/readyz"
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(sr, r)

			duration := time.Since(start)
			level := slog.LevelInfo
			if probePath(r.URL.Path) {
				level = slog.LevelDebug
			}

			logger.Log(r.Context(), level, "request",
				"component", "api",
				"method", r.Method,
				"path", r.URL.Path,
				"status", strconv.Itoa(sr.statusCode),
				"duration_ms", duration.Milliseconds(),
				"remote_ip", r.RemoteAddr,
			)
		})
	}
}
