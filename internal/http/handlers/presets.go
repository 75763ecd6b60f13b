package handlers

import (
	"net/http"

	"designgenius/internal/domain"
)

type categoryPreset struct {
	Name               string `json:"name"`
	Slug               string `json:"slug"`
	DefaultAspectRatio string `json:"default_aspect_ratio"`
}

// Presets exposes the closed sets a client form renders: the five categories
// with their default ratios, the style presets, and the aspect ratios.
func (a *App) Presets(w http.ResponseWriter, r *http.Request) {
	categories := make([]categoryPreset, 0, len(domain.Categories()))
	for _, c := range domain.Categories() {
		categories = append(categories, categoryPreset{
			Name:               string(c),
			Slug:               c.Slug(),
			DefaultAspectRatio: string(c.DefaultAspectRatio()),
		})
	}
	ratios := make([]string, 0, len(domain.AspectRatios()))
	for _, ratio := range domain.AspectRatios() {
		ratios = append(ratios, string(ratio))
	}
	a.json(w, http.StatusOK, map[string]any{
		"categories":    categories,
		"styles":        domain.StylePresets,
		"aspect_ratios": ratios,
	})
}
