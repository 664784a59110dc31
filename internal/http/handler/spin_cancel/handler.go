package spincancel

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jgs61/wheelofchumps/internal/http/handler/common"
	"github.com/jgs61/wheelofchumps/internal/spin"
)

// Handler реализует POST /spin/cancel.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Post("/cancel", h.handle)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) {
	snap := h.useCase.Cancel(r.Context())
	common.RespondJSON(w, http.StatusOK, map[string]spin.Snapshot{"spin": snap})
}
