package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"designgenius/pkg/zip"
)

func (a *App) ListAssets(w http.ResponseWriter, r *http.Request) {
	assets := a.Gallery.List()
	items := make([]assetResponse, 0, len(assets))
	for _, asset := range assets {
		items = append(items, toAssetResponse(asset))
	}
	selectedID := ""
	if selected, ok := a.Gallery.Selected(); ok {
		selectedID = selected.ID
	}
	a.json(w, http.StatusOK, map[string]any{
		"items":       items,
		"selected_id": selectedID,
	})
}

func (a *App) GetAsset(w http.ResponseWriter, r *http.Request) {
	asset, ok := a.Gallery.Get(chi.URLParam(r, "id"))
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "asset not found")
		return
	}
	a.json(w, http.StatusOK, toAssetResponse(asset))
}

// DeleteAsset removes the asset. Deleting an id that is not present is a
// no-op, so the response is 204 either way.
func (a *App) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	a.Gallery.Remove(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// DownloadAsset serves the stored image bytes with the
// "<category>-<timestamp>.png" attachment name.
func (a *App) DownloadAsset(w http.ResponseWriter, r *http.Request) {
	asset, ok := a.Gallery.Get(chi.URLParam(r, "id"))
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "asset not found")
		return
	}
	mime := asset.Image.MIME
	if mime == "" {
		mime = "image/png"
	}
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", asset.Filename()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(asset.Image.Data)
}

// DownloadArchive bundles the whole gallery into one zip download.
func (a *App) DownloadArchive(w http.ResponseWriter, r *http.Request) {
	assets := a.Gallery.List()
	if len(assets) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "gallery is empty")
		return
	}
	entries := make([]zip.Entry, 0, len(assets))
	for _, asset := range assets {
		entries = append(entries, zip.Entry{Filename: asset.Filename(), Data: asset.Image.Data})
	}
	archive, err := zip.Archive(entries)
	if err != nil {
		a.Logger.Error().Err(err).Msg("handlers: failed to archive gallery")
		a.error(w, http.StatusInternalServerError, "internal", "failed to build archive")
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=gallery-%d.zip", time.Now().UnixMilli()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

type selectionRequest struct {
	AssetID string `json:"asset_id"`
}

func (a *App) GetSelection(w http.ResponseWriter, r *http.Request) {
	asset, ok := a.Gallery.Selected()
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "no asset selected")
		return
	}
	a.json(w, http.StatusOK, toAssetResponse(asset))
}

func (a *App) PutSelection(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AssetID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "asset_id required")
		return
	}
	if err := a.Gallery.Select(req.AssetID); err != nil {
		a.error(w, http.StatusNotFound, "not_found", "asset not found")
		return
	}
	asset, _ := a.Gallery.Selected()
	a.json(w, http.StatusOK, toAssetResponse(asset))
}

func (a *App) ClearSelection(w http.ResponseWriter, r *http.Request) {
	a.Gallery.Deselect()
	w.WriteHeader(http.StatusNoContent)
}
