package proxy

import (
	"context"
	"drm-play/internal/core/domain"
	"strings"
)

func (p *credentialProxy) FetchStatus(ctx context.Context, assetID domain.AssetID) (*domain.AssetSummary, error) {
	if err := p.ensureConfigured(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(assetID.String()) == "" {
		return nil, domain.Validationf("video ID is required")
	}

	summary, err := p.provider.GetVideo(ctx, assetID)
	if err != nil {
		return nil, err
	}

	eventType := domain.AssetEventStatusObserved
	if summary.Status.IsReady() {
		eventType = domain.AssetEventReady
	}
	p.publish(ctx, eventType, *summary)

	return summary, nil
}
