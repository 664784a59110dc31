package spinstart

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jgs61/wheelofchumps/internal/domain"
	"github.com/jgs61/wheelofchumps/internal/spin"
)

type stubUseCase struct {
	args struct {
		names string
		task  string
	}
	err error
}

func (s *stubUseCase) Start(ctx context.Context, rawNames, rawTask string) (spin.Snapshot, error) {
	s.args.names = rawNames
	s.args.task = rawTask
	if s.err != nil {
		return spin.Snapshot{}, s.err
	}
	return spin.Snapshot{SpinID: "spin-1", Phase: domain.PhaseAccelerating}, nil
}

func newRouter(useCase UseCase) chi.Router {
	router := chi.NewRouter()
	New(useCase).Register(router)
	return router
}

func TestHandler_RejectsMalformedBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/start", bytes.NewBufferString(`{`))
	rec := httptest.NewRecorder()
	newRouter(&stubUseCase{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "INVALID_BODY")
}

func TestHandler_PassesPayload(t *testing.T) {
	t.Parallel()

	useCase := &stubUseCase{}
	payload, err := json.Marshal(request{Names: "Alice, Bob", Task: "wash the dishes"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/start", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	newRouter(useCase).ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, "Alice, Bob", useCase.args.names)
	require.Equal(t, "wash the dishes", useCase.args.task)

	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "spin-1", resp.Spin.SpinID)
	require.Equal(t, domain.IntroMessage, resp.Message)
}

func TestHandler_MapsValidationError(t *testing.T) {
	t.Parallel()

	useCase := &stubUseCase{err: &domain.ValidationError{Field: domain.FieldTask, Err: domain.ErrMissingTask}}
	req := httptest.NewRequest(http.MethodPost, "/start", bytes.NewBufferString(`{"names":"Alice"}`))
	rec := httptest.NewRecorder()
	newRouter(useCase).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "MISSING_TASK")
}

func TestHandler_MapsAlreadySpinning(t *testing.T) {
	t.Parallel()

	useCase := &stubUseCase{err: domain.ErrAlreadySpinning}
	req := httptest.NewRequest(http.MethodPost, "/start", bytes.NewBufferString(`{"names":"Alice","task":"x"}`))
	rec := httptest.NewRecorder()
	newRouter(useCase).ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}
