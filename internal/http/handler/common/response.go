package common

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jgs61/wheelofchumps/internal/domain"
	"github.com/jgs61/wheelofchumps/internal/logging"
)

type APIError struct {
	Error APIErrorBody `json:"error"`
}

type APIErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// RespondJSON отправляет JSON-ответ с указанным статус-кодом.
func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError отправляет ошибку в формате APIError.
func RespondError(w http.ResponseWriter, status int, body APIErrorBody) {
	RespondJSON(w, status, APIError{Error: body})
}

// HTTPError описывает ошибку, уже сопоставленную со статусом и кодом.
type HTTPError struct {
	status int
	body   APIErrorBody
}

func (e *HTTPError) Error() string {
	return e.body.Message
}

func NewHTTPError(status int, code, message string) *HTTPError {
	return &HTTPError{status: status, body: APIErrorBody{Code: code, Message: message}}
}

func NewBadRequestError(code, message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, code, message)
}

// InvalidBody возвращает ошибку неразобранного JSON тела.
func InvalidBody() *HTTPError {
	return NewBadRequestError("INVALID_BODY", "не удалось прочитать тело запроса")
}

// WithErrorHandling оборачивает обработчик, возвращающий ошибку, и отвечает по ней.
func WithErrorHandling(fn func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			RespondError(w, httpErr.status, httpErr.body)
			return
		}
		WriteDomainError(w, r, err)
	}
}

// WriteDomainError отвечает на доменную ошибку: 400 для ввода, 409 для занятого колеса, иначе 500.
func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := logging.ErrorCtx(r.Context(), err)
	status, body := domainErrorBody(err)

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(ctx, level, "request failed", "request_id", chimw.GetReqID(ctx), "code", body.Code, "error", err)

	RespondError(w, status, body)
}

func domainErrorBody(err error) (int, APIErrorBody) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest, APIErrorBody{
			Code:    vErr.Code(),
			Message: vErr.Err.Error(),
			Field:   string(vErr.Field),
		}
	case errors.Is(err, domain.ErrAlreadySpinning):
		return http.StatusConflict, APIErrorBody{Code: domain.ErrorCode(err), Message: domain.ErrAlreadySpinning.Error()}
	default:
		return http.StatusInternalServerError, APIErrorBody{Code: "INTERNAL_ERROR", Message: "internal server error"}
	}
}
