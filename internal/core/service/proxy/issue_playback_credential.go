package proxy

import (
	"context"
	"drm-play/internal/core/domain"
	"strings"
)

func (p *credentialProxy) IssuePlaybackCredential(ctx context.Context, assetID domain.AssetID) (*domain.PlaybackCredential, error) {
	if err := p.ensureConfigured(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(assetID.String()) == "" {
		return nil, domain.Validationf("video ID is required")
	}

	credential, err := p.provider.CreateOTP(ctx, assetID, p.otpOptions())
	if err != nil {
		return nil, err
	}

	p.logger.Info("playback credential issued", "video_id", assetID, "expires_at", credential.ExpiresAt)
	return credential, nil
}
