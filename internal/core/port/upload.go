package port

import (
	"context"
	"drm-play/internal/core/domain"
	"io"
)

// UploadSubmitter is an interface to define the direct submission of a file to an upload target
type UploadSubmitter interface {
	Submit(ctx context.Context, credential domain.UploadCredential, filename string, file io.Reader) error
}

// UploadService is an interface to define the upload orchestrator
type UploadService interface {
	Upload(ctx context.Context, file io.Reader, filename string, title string) (domain.AssetID, error)
}
