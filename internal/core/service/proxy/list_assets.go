package proxy

import (
	"context"
	"drm-play/internal/core/domain"
)

func (p *credentialProxy) ListAssets(ctx context.Context) ([]domain.AssetSummary, error) {
	if err := p.ensureConfigured(); err != nil {
		return nil, err
	}

	assets, err := p.provider.ListVideos(ctx)
	if err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []domain.AssetSummary{}
	}
	return assets, nil
}
