package integration_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jgs61/wheelofchumps/internal/config"
	"github.com/jgs61/wheelofchumps/internal/domain"
	"github.com/jgs61/wheelofchumps/internal/http/router"
	"github.com/jgs61/wheelofchumps/internal/infrastructure/nower"
	"github.com/jgs61/wheelofchumps/internal/infrastructure/randomizer"
	"github.com/jgs61/wheelofchumps/internal/infrastructure/scheduler"
	"github.com/jgs61/wheelofchumps/internal/service"
	"github.com/jgs61/wheelofchumps/internal/spin"
)

type sseEvent struct {
	name string
	data string
}

func TestHappyPath(t *testing.T) {
	if testing.Short() {
		t.Skip("пропуск интеграционного теста в режиме -short")
	}
	t.Parallel()

	cfg := config.Config{Spin: config.SpinConfig{FrameInterval: 10 * time.Millisecond, EventBuffer: 4096}}
	cfg.Normalize()
	svc := service.New(cfg, randomizer.NewSeeded(7), nower.New(), scheduler.New())

	// Путь к openapi.yml относительно корня проекта
	cwd, err := os.Getwd()
	require.NoError(t, err)
	spec, err := os.ReadFile(filepath.Join(cwd, "..", "..", "openapi.yml"))
	require.NoError(t, err)

	server := httptest.NewServer(router.New(svc, spec, 2*time.Second).Router())
	defer server.Close()

	resp := doRequest(t, server, http.MethodGet, "/swagger/openapi.yml", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, server, http.MethodPost, "/input/validate", map[string]string{"field": "task", "value": "<b>"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var check struct {
		Valid bool   `json:"valid"`
		Code  string `json:"code"`
	}
	decode(t, resp, &check)
	require.False(t, check.Valid)
	require.Equal(t, "INVALID_CHARACTERS", check.Code)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	events := subscribe(t, ctx, server)
	first := <-events
	require.Equal(t, "state", first.name)

	resp = doRequest(t, server, http.MethodPost, "/spin/start", map[string]string{
		"names": "Alice, Bob, Charlie",
		"task":  "wash the dishes",
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, server, http.MethodPost, "/spin/start", map[string]string{"names": "Dave", "task": "x"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	var phases []domain.Phase
	var displays int
	var result domain.Result
	for ev := range events {
		switch ev.name {
		case "phase":
			var e service.Event
			require.NoError(t, json.Unmarshal([]byte(ev.data), &e))
			phases = append(phases, e.Phase)
		case "display":
			displays++
		case "result":
			var e service.Event
			require.NoError(t, json.Unmarshal([]byte(ev.data), &e))
			result = *e.Result
		}
		if result.ChosenName != "" {
			break
		}
	}

	require.Equal(t, []domain.Phase{
		domain.PhaseAccelerating,
		domain.PhaseCruising,
		domain.PhaseDecelerating,
		domain.PhaseSettling,
		domain.PhaseDone,
	}, phases)
	require.Greater(t, displays, 1)
	require.Contains(t, []string{"Alice", "Bob", "Charlie"}, result.ChosenName)
	require.Equal(t, "wash the dishes", result.Task)

	resp = doRequest(t, server, http.MethodGet, "/spin/state", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var state map[string]spin.Snapshot
	decode(t, resp, &state)
	require.Equal(t, domain.PhaseDone, state["spin"].Phase)
	require.Equal(t, result.ChosenName, state["spin"].Result.ChosenName)

	// Повторный запуск после завершения сначала очищает результат.
	resp = doRequest(t, server, http.MethodPost, "/spin/start", map[string]string{"names": "Dave", "task": "mop"})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, server, http.MethodPost, "/spin/cancel", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &state)
	require.Equal(t, domain.PhaseIdle, state["spin"].Phase)
	require.Nil(t, state["spin"].Result)
}

// subscribe читает поток /spin/events в фоне до отмены ctx.
func subscribe(t *testing.T, ctx context.Context, server *httptest.Server) <-chan sseEvent {
	t.Helper()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/spin/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := make(chan sseEvent, 1024)
	go func() {
		defer close(out)
		defer resp.Body.Close()

		var cur sseEvent
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			switch {
			case strings.HasPrefix(line, "event: "):
				cur.name = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				cur.data = strings.TrimPrefix(line, "data: ")
			case line == "":
				out <- cur
				cur = sseEvent{}
			}
		}
	}()
	return out
}

func doRequest(t *testing.T, server *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}
