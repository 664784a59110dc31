package spinstart

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jgs61/wheelofchumps/internal/domain"
	"github.com/jgs61/wheelofchumps/internal/http/handler/common"
	"github.com/jgs61/wheelofchumps/internal/spin"
)

type request struct {
	Names string `json:"names"`
	Task  string `json:"task"`
}

type response struct {
	Spin    spin.Snapshot `json:"spin"`
	Message string        `json:"message"`
}

// Handler реализует POST /spin/start.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Post("/start", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return common.InvalidBody()
	}
	snap, err := h.useCase.Start(r.Context(), req.Names, req.Task)
	if err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusAccepted, response{Spin: snap, Message: domain.IntroMessage})
	return nil
}
