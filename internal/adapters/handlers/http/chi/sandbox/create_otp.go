package sandbox

import (
	"drm-play/internal/core/domain"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// CreateOTPRequest is the body of POST /videos/{id}/otp
type CreateOTPRequest struct {
	TTL           int    `json:"ttl"`
	WhitelistHref string `json:"whitelisthref"`
}

// CreateOTPResponse is a playback grant
type CreateOTPResponse struct {
	OTP          string `json:"otp"`
	PlaybackInfo string `json:"playbackInfo"`
}

func (h *Handler) CreateOTP(w http.ResponseWriter, r *http.Request) {
	var req CreateOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Error("error decoding otp request", "error", err)
		h.writeError(w, domain.Validationf("invalid request body"))
		return
	}
	if req.TTL < 0 {
		h.writeError(w, domain.Validationf("ttl must not be negative"))
		return
	}

	assetID := domain.AssetID(chi.URLParam(r, "videoID"))
	otp, playbackInfo, err := h.hosting.CreateOTP(r.Context(), assetID, time.Duration(req.TTL)*time.Second, req.WhitelistHref)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, CreateOTPResponse{OTP: otp, PlaybackInfo: playbackInfo})
}
