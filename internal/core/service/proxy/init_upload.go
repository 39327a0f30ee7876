package proxy

import (
	"context"
	"drm-play/internal/core/domain"
)

// InitUpload requests a one time upload target. It never transfers the file itself.
func (p *credentialProxy) InitUpload(ctx context.Context, title string, filename string) (*domain.UploadCredential, error) {
	if err := p.ensureConfigured(); err != nil {
		return nil, err
	}

	title = domain.EffectiveTitle(title, filename)
	if title == "" {
		return nil, domain.Validationf("title or filename is required")
	}

	credential, err := p.provider.CreateUpload(ctx, title)
	if err != nil {
		return nil, err
	}

	p.logger.Info("upload initiated", "video_id", credential.AssetID, "title", title)
	p.publish(ctx, domain.AssetEventUploadInitiated, domain.AssetSummary{
		ID:     credential.AssetID,
		Title:  title,
		Status: domain.AssetStatusPreUpload,
	})

	return credential, nil
}
