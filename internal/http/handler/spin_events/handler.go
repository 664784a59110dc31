package spinevents

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jgs61/wheelofchumps/internal/http/handler/common"
	"github.com/jgs61/wheelofchumps/internal/metrics"
)

// stateEvent называет первое событие потока, в нём лежит снимок колеса.
const stateEvent = "state"

// Handler реализует GET /spin/events: поток сигналов колеса в формате Server-Sent Events.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Get("/events", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return common.NewHTTPError(http.StatusInternalServerError, "STREAMING_UNSUPPORTED", "потоковая передача не поддерживается")
	}
	ctx := r.Context()

	// Подписка до снимка: ни один сигнал между ними не потеряется.
	events, unsubscribe := h.useCase.Subscribe(ctx)
	defer unsubscribe()
	defer metrics.StreamOpened()()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, stateEvent, h.useCase.State(ctx)); err != nil {
		slog.DebugContext(ctx, "event stream closed", "error", err)
		return nil
	}
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := writeEvent(w, string(ev.Kind), ev); err != nil {
				slog.DebugContext(ctx, "event stream closed", "error", err)
				return nil
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w io.Writer, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
	return err
}
