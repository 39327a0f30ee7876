package video

import (
	"drm-play/internal/adapters/handlers/http/chi/v1/response"
	"drm-play/internal/core/domain"
	"errors"
	"net/http"
)

// V1UploadFileResponse is the response of an orchestrated upload
type V1UploadFileResponse struct {
	Success bool           `json:"success"`
	VideoID domain.AssetID `json:"videoId"`
	Message string         `json:"message"`
}

// UploadFileV1 receives a multipart form with a file part and an optional
// title, then runs the whole upload against the provider storage.
func (h *HandlerV1) UploadFileV1(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseMultipartForm(h.uploadConfig.MemoryLimit); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			response.JSON(w, h.logger, http.StatusRequestEntityTooLarge, response.ErrorResponse{Error: "file too large"})
			return
		}
		h.logger.Error("error parsing upload form", "error", err)
		response.Error(w, h.logger, domain.Validationf("invalid multipart form"))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.logger.Warn("failed to remove multipart temp files", "error", err)
		}
	}()

	file, header, err := r.FormFile(domain.UploadFileField)
	if err != nil {
		response.Error(w, h.logger, domain.Validationf("file is required"))
		return
	}
	defer file.Close()

	videoID, err := h.uploadService.Upload(r.Context(), file, header.Filename, r.FormValue("title"))
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, h.logger, http.StatusCreated, V1UploadFileResponse{
		Success: true,
		VideoID: videoID,
		Message: "Video uploaded successfully. Processing will begin shortly.",
	})
}
