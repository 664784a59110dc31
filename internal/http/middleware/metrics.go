package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jgs61/wheelofchumps/internal/metrics"
)

const eventStreamType = "text/event-stream"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// httpRequestDuration не учитывает потоки событий, их длительность задаёт клиент.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)

	httpStreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Name:      "http_stream_duration_seconds",
			Help:      "Lifetime of event stream connections in seconds",
			Buckets:   []float64{1, 5, 30, 60, 300, 900, 3600},
		},
		[]string{"endpoint"},
	)

	httpRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Name:      "http_request_size_bytes",
			Help:      "HTTP request size in bytes",
			Buckets:   []float64{64, 256, 1024, 4096, 16384},
		},
		[]string{"method", "endpoint"},
	)
)

// MetricsMiddleware собирает метрики HTTP по методу, шаблону маршрута и статусу.
// Обёртка chi сохраняет http.Flusher, поэтому поток событий через неё проходит.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(ww.Status())
		endpoint := getEndpoint(r)

		httpRequestsTotal.WithLabelValues(r.Method, endpoint, status).Inc()
		if ww.Header().Get("Content-Type") == eventStreamType {
			httpStreamDuration.WithLabelValues(endpoint).Observe(duration)
		} else {
			httpRequestDuration.WithLabelValues(r.Method, endpoint, status).Observe(duration)
		}
		if r.ContentLength > 0 {
			httpRequestSize.WithLabelValues(r.Method, endpoint).Observe(float64(r.ContentLength))
		}
	})
}

// getEndpoint возвращает метку эндпоинта для метрик.
func getEndpoint(r *http.Request) string {
	if r == nil {
		return "/"
	}
	if path := routePath(r); path != "" {
		return path
	}
	return "/"
}
