package sandbox

import (
	"drm-play/internal/core/domain"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// VideoResponse is a video as the provider API reports it
type VideoResponse struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Status     string  `json:"status"`
	Length     float64 `json:"length"`
	UploadTime *int64  `json:"upload_time"`
}

// ListVideosResponse is the body of GET /videos
type ListVideosResponse struct {
	Rows  []VideoResponse `json:"rows"`
	Count int             `json:"count"`
}

func toVideoResponse(asset domain.HostedAsset) VideoResponse {
	resp := VideoResponse{
		ID:     asset.ID.String(),
		Title:  asset.Title,
		Status: string(asset.Status),
		Length: asset.Length,
	}
	if asset.UploadedAt != nil {
		secs := asset.UploadedAt.Unix()
		resp.UploadTime = &secs
	}
	return resp
}

func (h *Handler) GetVideo(w http.ResponseWriter, r *http.Request) {
	asset, err := h.hosting.GetVideo(r.Context(), domain.AssetID(chi.URLParam(r, "videoID")))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toVideoResponse(*asset))
}

func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	assets, err := h.hosting.ListVideos(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	rows := make([]VideoResponse, 0, len(assets))
	for _, asset := range assets {
		rows = append(rows, toVideoResponse(asset))
	}
	h.writeJSON(w, http.StatusOK, ListVideosResponse{Rows: rows, Count: len(rows)})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		h.writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Video not found"})
	case errors.Is(err, domain.ErrAssetNotReady):
		h.writeJSON(w, http.StatusConflict, MessageResponse{Message: "Video is not ready for playback"})
	case errors.Is(err, domain.ErrValidation):
		h.writeJSON(w, http.StatusBadRequest, MessageResponse{Message: err.Error()})
	default:
		h.logger.Error("sandbox request failed", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
	}
}
