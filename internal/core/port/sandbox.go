package port

import (
	"context"
	"drm-play/internal/core/domain"
	"time"
)

// AssetStore is an interface to define the sandbox asset persistence
type AssetStore interface {
	Create(ctx context.Context, asset domain.HostedAsset) error
	FindByID(ctx context.Context, id domain.AssetID) (*domain.HostedAsset, error)
	List(ctx context.Context) ([]domain.HostedAsset, error)
	// Update applies fn to the stored asset atomically
	Update(ctx context.Context, id domain.AssetID, fn func(*domain.HostedAsset) error) (*domain.HostedAsset, error)
	Delete(ctx context.Context, id domain.AssetID) error
	// DeleteIf removes the asset only when cond holds for its stored state
	DeleteIf(ctx context.Context, id domain.AssetID, cond func(domain.HostedAsset) bool) (bool, error)
}

// UploadStorage is an interface to define the object storage behind the sandbox uploads
type UploadStorage interface {
	GeneratePresignedPost(ctx context.Context, objectKey string) (*domain.PostPolicy, error)
	GetObjectSize(ctx context.Context, objectKey string) (int64, error)
	GetHeaderBytes(ctx context.Context, objectKey string, n int64) ([]byte, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

// HostingService is an interface to define the sandbox provider API
type HostingService interface {
	CreateUpload(ctx context.Context, title string) (*domain.HostedAsset, *domain.PostPolicy, error)
	CreateOTP(ctx context.Context, id domain.AssetID, ttl time.Duration, allowedOrigin string) (otp string, playbackInfo string, err error)
	GetVideo(ctx context.Context, id domain.AssetID) (*domain.HostedAsset, error)
	ListVideos(ctx context.Context) ([]domain.HostedAsset, error)
}

// EncodingService is an interface to define the simulated encoding pipeline
type EncodingService interface {
	PromoteQueued(ctx context.Context, now time.Time) (int, error)
	ExpirePreUpload(ctx context.Context, now time.Time) (int, error)
}
