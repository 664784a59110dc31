package inputvalidate

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jgs61/wheelofchumps/internal/domain"
	"github.com/jgs61/wheelofchumps/internal/http/handler/common"
)

type request struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type response struct {
	Valid      bool   `json:"valid"`
	Field      string `json:"field"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Handler реализует POST /input/validate: проверку одного поля до запуска.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Post("/validate", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return common.InvalidBody()
	}
	field := domain.Field(req.Field)
	if field != domain.FieldNames && field != domain.FieldTask {
		return common.NewBadRequestError("UNKNOWN_FIELD", "field должен быть names или task")
	}

	err := h.useCase.CheckField(r.Context(), field, req.Value)
	var vErr *domain.ValidationError
	switch {
	case err == nil:
		common.RespondJSON(w, http.StatusOK, response{Valid: true, Field: req.Field})
	case errors.As(err, &vErr):
		resp := response{
			Field:   req.Field,
			Code:    vErr.Code(),
			Message: vErr.Err.Error(),
		}
		if errors.Is(err, domain.ErrInvalidCharacters) {
			resp.Suggestion, _ = h.useCase.SuggestField(r.Context(), field, req.Value)
		}
		common.RespondJSON(w, http.StatusOK, resp)
	default:
		return err
	}
	return nil
}
