package sandbox

import (
	"context"
	"drm-play/internal/core/domain"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func (h *hostingService) CreateUpload(ctx context.Context, title string) (*domain.HostedAsset, *domain.PostPolicy, error) {
	id := domain.AssetID(strings.ReplaceAll(uuid.NewString(), "-", ""))
	title = strings.TrimSpace(title)
	if title == "" {
		title = id.String()
	}

	asset := domain.HostedAsset{
		ID:        id,
		Title:     title,
		Status:    domain.AssetStatusPreUpload,
		ObjectKey: h.keyPrefix + id.String(),
		CreatedAt: h.now().UTC(),
	}

	policy, err := h.storage.GeneratePresignedPost(ctx, asset.ObjectKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate upload policy: %w", err)
	}

	if err := h.store.Create(ctx, asset); err != nil {
		return nil, nil, fmt.Errorf("error creating asset: %w", err)
	}

	h.logger.Info("upload created", "video_id", id, "key", asset.ObjectKey)
	return &asset, policy, nil
}
