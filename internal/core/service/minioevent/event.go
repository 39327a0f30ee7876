package minioevent

import (
	"drm-play/internal/core/port"
	"log/slog"
	"time"
)

// sniffBytes is how much of an upload is read to detect its content type
const sniffBytes = 512

type minioEventService struct {
	store   port.AssetStore
	storage port.UploadStorage
	logger  *slog.Logger
	now     func() time.Time
}

// NewMinioEventService creates a new Minio event handler that moves uploaded sandbox assets to queued
func NewMinioEventService(store port.AssetStore, storage port.UploadStorage, logger *slog.Logger) port.MessageService {
	return &minioEventService{
		store:   store,
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}
