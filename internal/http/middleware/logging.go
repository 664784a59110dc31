package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jgs61/wheelofchumps/internal/logging"
	"github.com/jgs61/wheelofchumps/internal/metrics"
)

// LoggerMiddleware логирует начало и конец обработки запроса.
// В контекст попадают request ID, путь и метод, в конце статус и длительность.
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		path := routePath(r)
		metrics.IncRestRequestsTotal(path)

		requestID := uuid.NewString()
		ctx = logging.WithLogRequestID(ctx, requestID)
		ctx = logging.WithLogRequestPath(ctx, r.URL.Path)
		ctx = logging.WithLogRequestMethod(ctx, r.Method)
		slog.DebugContext(ctx, fmt.Sprintf("Start [%s] request processing", requestID))
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		r = r.WithContext(ctx)
		next.ServeHTTP(rw, r)

		timeServe := time.Since(start)
		ctx = logging.WithLogRequestStatus(ctx, rw.statusCode)
		ctx = logging.WithLogRequestDuration(ctx, timeServe.String())
		slog.InfoContext(ctx, fmt.Sprintf("Ended [%s] request processing", requestID))

		metrics.IncRestResponsesDuration(path, r.Method, timeServe)
		metrics.IncRestResponsesStatusesTotal(path, rw.statusCode)
	})
}

// routePath возвращает шаблон маршрута chi, а если его нет, фактический путь.
func routePath(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Flush нужен потоку событий колеса.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
