package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"designgenius/internal/domain"
)

type generateRequest struct {
	Prompt      string `json:"prompt"`
	Title       string `json:"title,omitempty"`
	Style       string `json:"style,omitempty"`
	Category    string `json:"category"`
	AspectRatio string `json:"aspect_ratio,omitempty"`
}

type assetResponse struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Prompt      string `json:"prompt"`
	Title       string `json:"title,omitempty"`
	ImageURI    string `json:"image_uri"`
	CreatedAt   string `json:"created_at"`
	AspectRatio string `json:"aspect_ratio"`
	Filename    string `json:"filename"`
}

func toAssetResponse(asset domain.GeneratedAsset) assetResponse {
	return assetResponse{
		ID:          asset.ID,
		Category:    string(asset.Category),
		Prompt:      asset.Prompt,
		Title:       asset.Title,
		ImageURI:    asset.Image.DataURI(),
		CreatedAt:   asset.CreatedAt.UTC().Format(time.RFC3339Nano),
		AspectRatio: string(asset.AspectRatio),
		Filename:    asset.Filename(),
	}
}

// Generate handles a single generation submission. Defaults mirror the form:
// the first style preset when no style is picked and the category's default
// ratio when no ratio is picked.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	ratio := category.DefaultAspectRatio()
	if strings.TrimSpace(req.AspectRatio) != "" {
		ratio, err = domain.ParseAspectRatio(req.AspectRatio)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", err.Error())
			return
		}
	}

	style := strings.TrimSpace(req.Style)
	if style == "" {
		style = domain.DefaultStyle()
	}

	asset, err := a.Studio.Submit(r.Context(), domain.GenerationRequest{
		FreeText:    req.Prompt,
		Title:       req.Title,
		Style:       style,
		Category:    category,
		AspectRatio: ratio,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingInput):
			a.error(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		case errors.Is(err, domain.ErrGenerationInFlight):
			a.error(w, http.StatusConflict, "generation_in_flight", err.Error())
		default:
			a.error(w, http.StatusBadGateway, "generation_error", err.Error())
		}
		return
	}

	a.json(w, http.StatusCreated, toAssetResponse(asset))
}
