package sandbox

import (
	"context"
	"drm-play/internal/core/domain"
)

func (h *hostingService) GetVideo(ctx context.Context, id domain.AssetID) (*domain.HostedAsset, error) {
	return h.store.FindByID(ctx, id)
}

func (h *hostingService) ListVideos(ctx context.Context) ([]domain.HostedAsset, error) {
	return h.store.List(ctx)
}
