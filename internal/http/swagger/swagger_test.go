package swagger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoutesServesUI(t *testing.T) {
	router := chi.NewRouter()
	RegisterRoutes(router, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Wheel of Chumps")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/openapi.yml", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "SPEC_NOT_LOADED")
}

func TestRegisterRoutesServesSpec(t *testing.T) {
	router := chi.NewRouter()
	RegisterRoutes(router, []byte("openapi: 3.0.3\n"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/openapi.yml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "openapi: 3.0.3\n", rec.Body.String())
	require.Contains(t, rec.Header().Get("Content-Type"), "application/yaml")
}
