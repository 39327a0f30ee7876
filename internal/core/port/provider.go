package port

import (
	"context"
	"drm-play/internal/core/domain"
)

// VideoProvider is an interface to define the external DRM provider API interactions
type VideoProvider interface {
	CreateUpload(ctx context.Context, title string) (*domain.UploadCredential, error)
	CreateOTP(ctx context.Context, assetID domain.AssetID, opts domain.OTPOptions) (*domain.PlaybackCredential, error)
	GetVideo(ctx context.Context, assetID domain.AssetID) (*domain.AssetSummary, error)
	ListVideos(ctx context.Context) ([]domain.AssetSummary, error)
}

// UploadCredentialIssuer issues one time upload credentials
type UploadCredentialIssuer interface {
	InitUpload(ctx context.Context, title string, filename string) (*domain.UploadCredential, error)
}

// StatusFetcher fetches the current status of an asset
type StatusFetcher interface {
	FetchStatus(ctx context.Context, assetID domain.AssetID) (*domain.AssetSummary, error)
}

// PlaybackCredentialIssuer issues fresh playback credentials
type PlaybackCredentialIssuer interface {
	IssuePlaybackCredential(ctx context.Context, assetID domain.AssetID) (*domain.PlaybackCredential, error)
}

// AssetLister lists provider assets
type AssetLister interface {
	ListAssets(ctx context.Context) ([]domain.AssetSummary, error)
}

// CredentialProxy is an interface to define the credential proxy service
type CredentialProxy interface {
	UploadCredentialIssuer
	StatusFetcher
	PlaybackCredentialIssuer
	AssetLister
}
