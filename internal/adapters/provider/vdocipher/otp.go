package vdocipher

import (
	"context"
	"drm-play/internal/core/domain"
	"fmt"
	"net/http"
	"time"
)

type otpRequest struct {
	TTL           int    `json:"ttl"`
	WhitelistHref string `json:"whitelisthref,omitempty"`
}

type otpResponse struct {
	OTP          string `json:"otp"`
	PlaybackInfo string `json:"playbackInfo"`
}

// CreateOTP issues an OTP and playback info pair for a video
func (c *Client) CreateOTP(ctx context.Context, assetID domain.AssetID, opts domain.OTPOptions) (*domain.PlaybackCredential, error) {
	req := otpRequest{
		TTL:           int(opts.TTL / time.Second),
		WhitelistHref: opts.AllowedHrefPattern,
	}

	issuedAt := time.Now()
	var resp otpResponse
	if err := c.do(ctx, http.MethodPost, videoPath(assetID, "/otp"), nil, req, &resp); err != nil {
		return nil, err
	}
	if resp.OTP == "" || resp.PlaybackInfo == "" {
		return nil, fmt.Errorf("%w: empty otp or playbackInfo", domain.ErrInvalidCredential)
	}

	return &domain.PlaybackCredential{
		AssetID:      assetID,
		OTP:          resp.OTP,
		PlaybackInfo: resp.PlaybackInfo,
		IssuedAt:     issuedAt,
		ExpiresAt:    issuedAt.Add(opts.TTL),
	}, nil
}
