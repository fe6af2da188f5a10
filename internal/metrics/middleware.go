package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "soartv",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"surface", "method", "path", "status"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "soartv",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"surface", "method", "path", "status"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(httpRequestsTotal)
}

// Middleware records HTTP request duration and count.
func Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(ww.status)

			// Use chi route pattern for path normalization
			routePattern := chi.RouteContext(r.Context()).RoutePattern()
			path := normalizePath(routePattern)
			surface := surfaceOf(routePattern)
			method := r.Method

			httpRequestDuration.WithLabelValues(surface, method, path, status).Observe(duration)
			httpRequestsTotal.WithLabelValues(surface, method, path, status).Inc()
		})
	}
}

// normalizePath keeps label cardinality bounded: unmatched requests (SPA
// fallback, probes for random paths) collapse into one label.
func normalizePath(path string) string {
	if path == "" || path == "/*" {
		return "unknown"
	}
	return path
}

// API surfaces served by one process.
const (
	SurfaceAPI     = "api"
	SurfaceObjects = "objects"
	SurfaceOps     = "ops"
	SurfaceStatic  = "static"
)

// surfaceOf groups a route pattern by the part of the app it belongs to:
// JSON API, object downloads, health/metrics, or the SPA.
func surfaceOf(pattern string) string {
	switch {
	case strings.HasPrefix(pattern, "/api/"):
		return SurfaceAPI
	case strings.HasPrefix(pattern, "/objects/"):
		return SurfaceObjects
	case pattern == "/health" || pattern == "/metrics":
		return SurfaceOps
	default:
		return SurfaceStatic
	}
}

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(b) //nolint:wrapcheck // delegating to underlying ResponseWriter
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
