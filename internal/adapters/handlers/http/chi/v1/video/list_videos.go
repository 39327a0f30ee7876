package video

import (
	"drm-play/internal/adapters/handlers/http/chi/v1/response"
	"drm-play/internal/core/domain"
	"net/http"
	"time"
)

// V1VideoRow is one listed video
type V1VideoRow struct {
	ID         domain.AssetID     `json:"id"`
	Title      string             `json:"title"`
	Status     domain.AssetStatus `json:"status"`
	Length     float64            `json:"length"`
	UploadTime *time.Time         `json:"uploadTime"`
}

// V1ListVideosResponse lists videos; Rows is never null
type V1ListVideosResponse struct {
	Rows []V1VideoRow `json:"rows"`
}

func (h *HandlerV1) ListVideosV1(w http.ResponseWriter, r *http.Request) {

	assets, err := h.proxy.ListAssets(r.Context())
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	rows := make([]V1VideoRow, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, V1VideoRow{
			ID:         a.ID,
			Title:      a.Title,
			Status:     a.Status,
			Length:     a.Length,
			UploadTime: a.UploadTime,
		})
	}

	response.JSON(w, h.logger, http.StatusOK, V1ListVideosResponse{Rows: rows})
}
