package encoder

import (
	"drm-play/internal/config"
	"drm-play/internal/core/port"
	"log/slog"
)

type encodingService struct {
	store   port.AssetStore
	storage port.UploadStorage
	config  config.EncoderConfig
	logger  *slog.Logger
}

// NewEncodingService creates the simulated encoding pipeline of the sandbox
func NewEncodingService(store port.AssetStore, storage port.UploadStorage, cfg config.EncoderConfig, logger *slog.Logger) port.EncodingService {
	return &encodingService{
		store:   store,
		storage: storage,
		config:  cfg,
		logger:  logger,
	}
}
