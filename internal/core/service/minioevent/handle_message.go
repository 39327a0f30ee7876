package minioevent

import (
	"context"
	"drm-play/internal/core/domain"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const objectCreatedPrefix = "s3:ObjectCreated:"

func (m *minioEventService) HandleMessage(ctx context.Context, data []byte) error {
	var event domain.MinIOEvent

	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("could not unmarshal minioevent: %v", err)
	}
	if len(event.Records) == 0 {
		return fmt.Errorf("no records in minioevent")
	}

	for _, record := range event.Records {
		if !strings.HasPrefix(record.EventName, objectCreatedPrefix) {
			m.logger.Debug("ignoring event", "eventtype", record.EventName)
			continue
		}
		if err := m.handleObjectCreated(ctx, record.S3.Object.Key); err != nil {
			return err
		}
	}
	return nil
}

func (m *minioEventService) handleObjectCreated(ctx context.Context, key string) error {
	decodedKey, err := url.QueryUnescape(key)
	if err != nil {
		return err
	}

	assetID := domain.AssetID(decodedKey[strings.LastIndex(decodedKey, "/")+1:])
	if assetID == "" {
		return fmt.Errorf("no asset id in key %q", decodedKey)
	}

	m.logger.Info("handling event", "key", decodedKey, "video_id", assetID)

	asset, err := m.store.FindByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, domain.ErrAssetNotFound) {
			// not one of ours, acking stops redelivery
			m.logger.Warn("upload for unknown asset", "key", decodedKey)
			return nil
		}
		return err
	}

	size, err := m.storage.GetObjectSize(ctx, asset.ObjectKey)
	if err != nil {
		return err
	}

	//sniff header
	header, err := m.storage.GetHeaderBytes(ctx, asset.ObjectKey, sniffBytes)
	if err != nil {
		return err
	}
	contentType := http.DetectContentType(header)
	uploadedAt := m.now().UTC()

	updated, err := m.store.Update(ctx, assetID, func(a *domain.HostedAsset) error {
		if a.Status != domain.AssetStatusPreUpload {
			return nil
		}
		a.Status = domain.AssetStatusQueued
		a.Size = size
		a.ContentType = contentType
		a.UploadedAt = &uploadedAt
		return nil
	})
	if err != nil {
		return err
	}

	m.logger.Info("asset queued", "video_id", assetID, "status", updated.Status, "size", updated.Size, "content_type", updated.ContentType)
	return nil
}
