package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"designgenius/internal/http/handlers"
	"designgenius/internal/middleware"
)

func NewRouter(app *handlers.App) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimiddleware.RealIP, chimiddleware.Recoverer)
	r.Use(middleware.Logger(app.Logger))
	r.Use(middleware.CORS(app.Config.AllowedOrigins))
	r.Use(middleware.RateLimit(app.Config.RateLimitPerMin))

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/presets", app.Presets)

	r.Post("/v1/generate", app.Generate)

	r.Route("/v1/assets", func(r chi.Router) {
		r.Get("/", app.ListAssets)
		r.Get("/zip", app.DownloadArchive)
		r.Get("/{id}", app.GetAsset)
		r.Delete("/{id}", app.DeleteAsset)
		r.Get("/{id}/download", app.DownloadAsset)
	})

	r.Route("/v1/selection", func(r chi.Router) {
		r.Get("/", app.GetSelection)
		r.Put("/", app.PutSelection)
		r.Delete("/", app.ClearSelection)
	})

	return r
}
