package encoder

import (
	"context"
	"drm-play/internal/core/domain"
	"time"
)

// PromoteQueued marks ready every queued asset uploaded at least EncodeDelay before now
func (e *encodingService) PromoteQueued(ctx context.Context, now time.Time) (int, error) {
	assets, err := e.store.List(ctx)
	if err != nil {
		return 0, err
	}

	promoted := 0
	for _, asset := range assets {
		if asset.Status != domain.AssetStatusQueued || asset.UploadedAt == nil {
			continue
		}
		if now.Sub(*asset.UploadedAt) < e.config.EncodeDelay {
			continue
		}

		readyAt := now.UTC()
		_, updateErr := e.store.Update(ctx, asset.ID, func(a *domain.HostedAsset) error {
			if a.Status != domain.AssetStatusQueued {
				return nil
			}
			a.Status = domain.AssetStatusReady
			a.ReadyAt = &readyAt
			return nil
		})
		if updateErr != nil {
			e.logger.Error("Failed to promote asset", "video_id", asset.ID, "err", updateErr)
			continue
		}
		promoted++
		e.logger.Info("asset ready", "video_id", asset.ID)
	}
	return promoted, nil
}
