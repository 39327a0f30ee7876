package video

import (
	"drm-play/internal/adapters/handlers/http/chi/v1/response"
	"drm-play/internal/core/domain"
	"encoding/json"
	"net/http"
)

// V1InitUploadRequest is the request for a one time upload credential
type V1InitUploadRequest struct {
	Title    string `json:"title"`
	FileName string `json:"filename"`
}

// V1InitUploadResponse carries the upload target and the signed fields in submission order
type V1InitUploadResponse struct {
	VideoID          domain.AssetID     `json:"videoId"`
	UploadTarget     string             `json:"uploadTarget"`
	SignedFormFields []domain.FormField `json:"signedFormFields"`
}

func (h *HandlerV1) InitUploadV1(w http.ResponseWriter, r *http.Request) {

	var req V1InitUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding init upload request", "error", err)
		response.Error(w, h.logger, domain.Validationf("invalid request body"))
		return
	}

	credential, err := h.proxy.InitUpload(r.Context(), req.Title, req.FileName)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, h.logger, http.StatusCreated, V1InitUploadResponse{
		VideoID:          credential.AssetID,
		UploadTarget:     credential.UploadTarget,
		SignedFormFields: credential.Fields,
	})
}
