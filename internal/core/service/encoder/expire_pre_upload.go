package encoder

import (
	"context"
	"drm-play/internal/core/domain"
	"errors"
	"time"
)

// ExpirePreUpload drops assets whose upload never arrived within PreUploadTTL
func (e *encodingService) ExpirePreUpload(ctx context.Context, now time.Time) (int, error) {
	assets, err := e.store.List(ctx)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, asset := range assets {
		if asset.Status != domain.AssetStatusPreUpload || now.Sub(asset.CreatedAt) < e.config.PreUploadTTL {
			continue
		}

		// the upload may have landed since List, so the status is checked again by the store
		deleted, err := e.store.DeleteIf(ctx, asset.ID, func(a domain.HostedAsset) bool {
			return a.Status == domain.AssetStatusPreUpload
		})
		if err != nil {
			if !errors.Is(err, domain.ErrAssetNotFound) {
				e.logger.Error("Failed to delete expired asset", "video_id", asset.ID, "err", err)
			}
			continue
		}
		if !deleted {
			continue
		}
		// a late upload may still have been written before the policy expired
		if err := e.storage.DeleteObject(ctx, asset.ObjectKey); err != nil {
			e.logger.Warn("Failed to delete expired object", "key", asset.ObjectKey, "err", err)
		}
		expired++
	}
	if expired > 0 {
		e.logger.Info("expired pre-upload assets removed", "count", expired)
	}
	return expired, nil
}
