package spinstate

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jgs61/wheelofchumps/internal/http/handler/common"
	"github.com/jgs61/wheelofchumps/internal/spin"
)

// Handler реализует GET /spin/state.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Get("/state", h.handle)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]spin.Snapshot{"spin": h.useCase.State(r.Context())})
}
