package upload

import (
	"context"
	"drm-play/internal/core/domain"
	"drm-play/internal/core/port"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

type uploadService struct {
	issuer    port.UploadCredentialIssuer
	submitter port.UploadSubmitter
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewUploadService creates a new upload orchestrator. publisher may be nil.
func NewUploadService(issuer port.UploadCredentialIssuer, submitter port.UploadSubmitter, publisher port.EventPublisher, logger *slog.Logger) port.UploadService {
	return &uploadService{
		issuer:    issuer,
		submitter: submitter,
		publisher: publisher,
		logger:    logger,
	}
}

// Upload obtains a credential then submits the file directly to the upload target.
// The returned id can be polled right away even though the asset is not processed yet.
func (u *uploadService) Upload(ctx context.Context, file io.Reader, filename string, title string) (domain.AssetID, error) {
	if file == nil {
		return "", domain.Validationf("no file provided")
	}
	if strings.TrimSpace(filename) == "" {
		return "", domain.Validationf("file name is required")
	}

	credential, err := u.issuer.InitUpload(ctx, title, filename)
	if err != nil {
		return "", err
	}

	if err := u.submitter.Submit(ctx, *credential, filename, file); err != nil {
		u.logger.Error("upload failed", "video_id", credential.AssetID, "error", err)
		return "", err
	}

	u.logger.Info("video uploaded", "video_id", credential.AssetID, "filename", filename)
	u.publishUploaded(ctx, credential.AssetID, domain.EffectiveTitle(title, filename))
	return credential.AssetID, nil
}

func (u *uploadService) publishUploaded(ctx context.Context, assetID domain.AssetID, title string) {
	if u.publisher == nil {
		return
	}
	err := u.publisher.Publish(ctx, domain.AssetEvent{
		ID:         uuid.NewString(),
		Type:       domain.AssetEventUploaded,
		AssetID:    assetID,
		Title:      title,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		u.logger.Warn("failed to publish asset event", "type", domain.AssetEventUploaded, "video_id", assetID, "error", err)
	}
}
