package sandbox

import (
	"context"
	"drm-play/internal/core/domain"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func (h *hostingService) CreateOTP(ctx context.Context, id domain.AssetID, ttl time.Duration, allowedOrigin string) (string, string, error) {
	asset, err := h.store.FindByID(ctx, id)
	if err != nil {
		return "", "", err
	}
	if !asset.Status.IsReady() {
		return "", "", fmt.Errorf("%w: status is %s", domain.ErrAssetNotReady, asset.Status)
	}
	if ttl <= 0 {
		ttl = DefaultOTPTTL
	}

	grant := domain.HostedPlayback{
		AssetID:       asset.ID,
		AllowedOrigin: allowedOrigin,
		ExpiresAt:     h.now().Add(ttl).Unix(),
	}
	payload, err := json.Marshal(grant)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode playback info: %w", err)
	}

	otp := "20160313versASE323" + strings.ReplaceAll(uuid.NewString(), "-", "")
	h.logger.Info("otp issued", "video_id", id, "ttl", ttl)
	return otp, base64.StdEncoding.EncodeToString(payload), nil
}
