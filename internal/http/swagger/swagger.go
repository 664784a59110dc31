package swagger

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jgs61/wheelofchumps/internal/http/handler/common"
)

const uiHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Wheel of Chumps · Swagger</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      window.ui = SwaggerUIBundle({
        url: '/swagger/openapi.yml',
        dom_id: '#swagger-ui',
        presets: [
          SwaggerUIBundle.presets.apis,
          SwaggerUIBundle.SwaggerUIStandalonePreset
        ],
        layout: "BaseLayout",
        tryItOutEnabled: true
      });
    };
  </script>
</body>
</html>`

// RegisterRoutes подключает Swagger UI и отдаёт описание API колеса.
// Без загруженного описания /swagger/openapi.yml отвечает 404.
func RegisterRoutes(mux chi.Router, spec []byte) {
	mux.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(uiHTML))
	})
	mux.Get("/swagger/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		if len(spec) == 0 {
			common.RespondJSON(w, http.StatusNotFound, common.APIError{
				Error: common.APIErrorBody{Code: "SPEC_NOT_LOADED", Message: "openapi spec is not loaded"},
			})
			return
		}
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		_, _ = w.Write(spec)
	})
}
