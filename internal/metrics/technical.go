package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace задаёт общий префикс метрик сервиса.
const Namespace = "wheel"

var (
	// RestRequestsTotal считает входящие HTTP запросы по шаблону маршрута.
	RestRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "hits_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"path"},
	)

	// RestResponseDuration измеряет длительность ответа в миллисекундах.
	// Команды колеса укладываются в единицы миллисекунд, поток событий живёт минутами.
	RestResponseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "response_duration_ms",
			Help:      "Duration of HTTP requests in milliseconds.",
			Buckets:   []float64{1, 5, 25, 100, 500, 3500, 30000, 300000},
		},
		[]string{"path", "method"},
	)

	// RestEndpointsResponsesTotal считает ответы по статусу.
	RestEndpointsResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "responses_total",
			Help:      "Statuses for HTTP responses.",
		},
		[]string{"path", "status"},
	)

	// EventStreamsActive показывает число открытых потоков событий.
	EventStreamsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "event_streams_active",
			Help:      "Number of connected spin event streams.",
		},
	)
)

func IncRestRequestsTotal(path string) {
	RestRequestsTotal.WithLabelValues(path).Inc()
}

func IncRestResponsesDuration(path, method string, timeServe time.Duration) {
	RestResponseDuration.WithLabelValues(path, method).Observe(float64(timeServe.Milliseconds()))
}

func IncRestResponsesStatusesTotal(path string, status int) {
	RestEndpointsResponsesTotal.WithLabelValues(path, http.StatusText(status)).Inc()
}

// StreamOpened отмечает подключение к потоку событий и возвращает функцию отключения.
func StreamOpened() func() {
	EventStreamsActive.Inc()
	return EventStreamsActive.Dec
}
