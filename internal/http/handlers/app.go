package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"designgenius/internal/gallery"
	"designgenius/internal/infra"
	"designgenius/internal/studio"
)

// App bundles the dependencies handlers need. Mutation of gallery state only
// ever happens through the studio and the gallery's own operations.
type App struct {
	Config  *infra.Config
	Logger  zerolog.Logger
	Studio  *studio.Studio
	Gallery *gallery.Store
}

func NewApp(cfg *infra.Config, logger zerolog.Logger, st *studio.Studio, store *gallery.Store) *App {
	return &App{Config: cfg, Logger: logger, Studio: st, Gallery: store}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]string{"error": code, "message": message})
}
