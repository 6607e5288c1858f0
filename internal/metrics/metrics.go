package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meteorgo_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meteorgo_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	impactAnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meteorgo_impact_analyses_total",
			Help: "Completed impact analyses by resulting impact type.",
		},
		[]string{"impact_type"},
	)

	deflectionAssessmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meteorgo_deflection_assessments_total",
			Help: "Completed deflection assessments by feasibility.",
		},
		[]string{"feasible"},
	)

	catalogLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meteorgo_catalog_lookups_total",
			Help: "NASA SBDB lookups by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
	prometheus.MustRegister(impactAnalysesTotal)
	prometheus.MustRegister(deflectionAssessmentsTotal)
	prometheus.MustRegister(catalogLookupsTotal)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordImpactAnalysis counts one completed analysis.
func RecordImpactAnalysis(impactType string) {
	impactAnalysesTotal.WithLabelValues(impactType).Inc()
}

// RecordDeflectionAssessment counts one completed assessment.
func RecordDeflectionAssessment(feasible bool) {
	deflectionAssessmentsTotal.WithLabelValues(strconv.FormatBool(feasible)).Inc()
}

// RecordCatalogLookup counts one SBDB lookup with outcome
// "ok", "not_found" or "error".
func RecordCatalogLookup(outcome string) {
	catalogLookupsTotal.WithLabelValues(outcome).Inc()
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration for each request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		code := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.URL.Path, r.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(r.URL.Path, r.Method).Observe(duration)
	})
}
