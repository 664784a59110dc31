package spinevents

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jgs61/wheelofchumps/internal/domain"
	"github.com/jgs61/wheelofchumps/internal/service"
	"github.com/jgs61/wheelofchumps/internal/spin"
)

type stubUseCase struct {
	events       chan service.Event
	unsubscribed bool
}

func (s *stubUseCase) State(ctx context.Context) spin.Snapshot {
	return spin.Snapshot{Phase: domain.PhaseIdle, CanStart: true}
}

func (s *stubUseCase) Subscribe(ctx context.Context) (<-chan service.Event, func()) {
	return s.events, func() { s.unsubscribed = true }
}

func newRouter(useCase UseCase) chi.Router {
	router := chi.NewRouter()
	New(useCase).Register(router)
	return router
}

func readEvents(t *testing.T, body string) []string {
	t.Helper()

	var names []string
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		if name, ok := strings.CutPrefix(scanner.Text(), "event: "); ok {
			names = append(names, name)
		}
	}
	require.NoError(t, scanner.Err())
	return names
}

func TestHandler_StreamsStateThenEvents(t *testing.T) {
	t.Parallel()

	useCase := &stubUseCase{events: make(chan service.Event, 4)}
	useCase.events <- service.Event{Kind: service.EventPhase, Phase: domain.PhaseAccelerating}
	useCase.events <- service.Event{Kind: service.EventDisplay, Name: "Bob"}
	useCase.events <- service.Event{Kind: service.EventResult, Result: &domain.Result{ChosenName: "Bob", Task: "x"}}
	close(useCase.events)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	newRouter(useCase).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	require.Equal(t, []string{"state", "phase", "display", "result"}, readEvents(t, rec.Body.String()))
	require.Contains(t, rec.Body.String(), `data: {"kind":"display","name":"Bob"}`)
	require.True(t, useCase.unsubscribed)
}

func TestHandler_StopsWhenClientLeaves(t *testing.T) {
	t.Parallel()

	useCase := &stubUseCase{events: make(chan service.Event)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	newRouter(useCase).ServeHTTP(rec, req)

	require.Equal(t, []string{"state"}, readEvents(t, rec.Body.String()))
	require.True(t, useCase.unsubscribed)
}

type plainWriter struct {
	header http.Header
	status int
	body   strings.Builder
}

func (w *plainWriter) Header() http.Header         { return w.header }
func (w *plainWriter) Write(b []byte) (int, error) { return w.body.Write(b) }
func (w *plainWriter) WriteHeader(status int)      { w.status = status }

func TestHandler_RequiresFlusher(t *testing.T) {
	t.Parallel()

	w := &plainWriter{header: http.Header{}}
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	newRouter(&stubUseCase{events: make(chan service.Event)}).ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.status)
	require.Contains(t, w.body.String(), "STREAMING_UNSUPPORTED")
}
