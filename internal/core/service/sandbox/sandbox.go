package sandbox

import (
	"drm-play/internal/core/port"
	"log/slog"
	"time"
)

// DefaultOTPTTL applies when a caller asks for a non-positive ttl
const DefaultOTPTTL = 300 * time.Second

type hostingService struct {
	store     port.AssetStore
	storage   port.UploadStorage
	keyPrefix string
	logger    *slog.Logger
	now       func() time.Time
}

// NewHostingService creates a new sandbox hosting service. Objects are
// uploaded under keyPrefix followed by the asset id.
func NewHostingService(store port.AssetStore, storage port.UploadStorage, keyPrefix string, logger *slog.Logger) port.HostingService {
	return &hostingService{
		store:     store,
		storage:   storage,
		keyPrefix: keyPrefix,
		logger:    logger,
		now:       time.Now,
	}
}
