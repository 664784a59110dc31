package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jgs61/wheelofchumps/internal/http/handler/common"
	inputvalidate "github.com/jgs61/wheelofchumps/internal/http/handler/input_validate"
	spincancel "github.com/jgs61/wheelofchumps/internal/http/handler/spin_cancel"
	spinevents "github.com/jgs61/wheelofchumps/internal/http/handler/spin_events"
	spinreset "github.com/jgs61/wheelofchumps/internal/http/handler/spin_reset"
	spinstart "github.com/jgs61/wheelofchumps/internal/http/handler/spin_start"
	spinstate "github.com/jgs61/wheelofchumps/internal/http/handler/spin_state"
	"github.com/jgs61/wheelofchumps/internal/http/middleware"
	"github.com/jgs61/wheelofchumps/internal/http/swagger"
	"github.com/jgs61/wheelofchumps/internal/service"
)

// Handler агрегирует HTTP-эндпоинты колеса.
type Handler struct {
	service     *service.Service
	swaggerSpec []byte
	opTimeout   time.Duration
}

// New создаёт Handler. opTimeout ограничивает команды, но не поток событий.
func New(service *service.Service, spec []byte, opTimeout time.Duration) *Handler {
	return &Handler{service: service, swaggerSpec: spec, opTimeout: opTimeout}
}

// Router возвращает готовый chi.Router со всеми зарегистрированными маршрутами и middleware.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	// Middleware применяются в порядке объявления
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.PanicMiddleware)
	r.Use(middleware.LoggerMiddleware)
	r.Use(middleware.MetricsMiddleware)
	swagger.RegisterRoutes(r, h.swaggerSpec)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := h.service.HealthCheck(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "health check failed", "error", err)
			common.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}
		common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", promhttp.Handler())

	h.registerSpinRoutes(r)
	h.registerInputRoutes(r)

	return r
}

func (h *Handler) registerSpinRoutes(r chi.Router) {
	r.Route("/spin", func(router chi.Router) {
		router.Group(func(cmd chi.Router) {
			h.withTimeout(cmd)
			spinstart.New(h.service).Register(cmd)
			spincancel.New(h.service).Register(cmd)
			spinreset.New(h.service).Register(cmd)
			spinstate.New(h.service).Register(cmd)
		})
		// Поток событий живёт, пока подключён клиент.
		spinevents.New(h.service).Register(router)
	})
}

func (h *Handler) registerInputRoutes(r chi.Router) {
	r.Route("/input", func(router chi.Router) {
		h.withTimeout(router)
		inputvalidate.New(h.service).Register(router)
	})
}

func (h *Handler) withTimeout(r chi.Router) {
	if h.opTimeout > 0 {
		r.Use(chimw.Timeout(h.opTimeout))
	}
}
