package video

import (
	"drm-play/internal/adapters/handlers/http/chi/v1/response"
	"drm-play/internal/core/domain"
	"encoding/json"
	"net/http"
	"time"
)

// V1OTPResponse is a fresh playback credential
type V1OTPResponse struct {
	OTP          string    `json:"otp"`
	PlaybackInfo string    `json:"playbackInfo"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

func (h *HandlerV1) IssueOTPV1(w http.ResponseWriter, r *http.Request) {

	var req V1VideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding otp request", "error", err)
		response.Error(w, h.logger, domain.Validationf("invalid request body"))
		return
	}

	credential, err := h.proxy.IssuePlaybackCredential(r.Context(), req.VideoID)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, h.logger, http.StatusOK, V1OTPResponse{
		OTP:          credential.OTP,
		PlaybackInfo: credential.PlaybackInfo,
		ExpiresAt:    credential.ExpiresAt,
	})
}
