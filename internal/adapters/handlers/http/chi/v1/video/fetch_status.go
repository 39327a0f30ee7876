package video

import (
	"drm-play/internal/adapters/handlers/http/chi/v1/response"
	"drm-play/internal/core/domain"
	"encoding/json"
	"net/http"
	"time"
)

// V1VideoRequest identifies a video
type V1VideoRequest struct {
	VideoID domain.AssetID `json:"videoId"`
}

// V1StatusResponse is the current provider view of a video
type V1StatusResponse struct {
	Success    bool               `json:"success"`
	Status     domain.AssetStatus `json:"status"`
	Title      string             `json:"title"`
	Length     float64            `json:"length"`
	UploadTime *time.Time         `json:"uploadTime"`
}

func (h *HandlerV1) FetchStatusV1(w http.ResponseWriter, r *http.Request) {

	var req V1VideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding status request", "error", err)
		response.Error(w, h.logger, domain.Validationf("invalid request body"))
		return
	}

	summary, err := h.proxy.FetchStatus(r.Context(), req.VideoID)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, h.logger, http.StatusOK, V1StatusResponse{
		Success:    true,
		Status:     summary.Status,
		Title:      summary.Title,
		Length:     summary.Length,
		UploadTime: summary.UploadTime,
	})
}
