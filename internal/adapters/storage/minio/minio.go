package minio

import (
	"context"
	"drm-play/internal/config"
	"drm-play/internal/core/domain"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/signer"
)

const (
	iso8601DateFormat = "20060102T150405Z"
	signV4Algorithm   = "AWS4-HMAC-SHA256"
)

// Adapter is an adapter for minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
	now    func() time.Time
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger, now: time.Now}, nil
}

type postPolicyDocument struct {
	Expiration string `json:"expiration"`
	Conditions []any  `json:"conditions"`
}

// GeneratePresignedPost signs a browser POST upload for objectKey. Besides the
// usual conditions the policy pins success_action_status to 201 and
// success_action_redirect to empty, which every client appends after the
// signed fields.
func (a *Adapter) GeneratePresignedPost(ctx context.Context, objectKey string) (*domain.PostPolicy, error) {
	now := a.now().UTC()
	expiresAt := now.Add(a.config.UploadPolicyDuration)
	date := now.Format(iso8601DateFormat)
	credential := signer.GetCredential(a.config.AccessKey, a.config.Region, now, signer.ServiceTypeS3)

	doc := postPolicyDocument{
		Expiration: expiresAt.Format("2006-01-02T15:04:05.000Z"),
		Conditions: []any{
			[]any{"eq", "$bucket", a.config.BucketName},
			[]any{"eq", "$key", objectKey},
			[]any{"eq", "$" + domain.SuccessActionStatusField, "201"},
			[]any{"eq", "$" + domain.SuccessActionRedirectField, ""},
			[]any{"content-length-range", 1, a.config.UploadMaxSize},
			[]any{"eq", "$x-amz-algorithm", signV4Algorithm},
			[]any{"eq", "$x-amz-credential", credential},
			[]any{"eq", "$x-amz-date", date},
		},
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode post policy: %w", err)
	}
	policy := base64.StdEncoding.EncodeToString(raw)
	signature := signer.PostPresignSignatureV4(policy, now, a.config.SecretKey, a.config.Region)

	return &domain.PostPolicy{
		UploadLink: a.uploadLink(),
		Fields: []domain.FormField{
			{Name: "policy", Value: policy},
			{Name: "key", Value: objectKey},
			{Name: "x-amz-signature", Value: signature},
			{Name: "x-amz-algorithm", Value: signV4Algorithm},
			{Name: "x-amz-credential", Value: credential},
			{Name: "x-amz-date", Value: date},
		},
		ExpiresAt: expiresAt,
	}, nil
}

// uploadLink is the path style bucket URL, on PublicURL when browsers reach MinIO through another address
func (a *Adapter) uploadLink() string {
	base := strings.TrimRight(a.config.PublicURL, "/")
	if base == "" {
		scheme := "http"
		if a.config.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + a.config.Endpoint
	}
	return base + "/" + a.config.BucketName
}

// GetObjectSize returns the stored size of an object
func (a *Adapter) GetObjectSize(ctx context.Context, objectKey string) (int64, error) {
	info, err := a.client.StatObject(ctx, a.config.BucketName, objectKey, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return 0, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, objectKey)
		}
		return 0, fmt.Errorf("failed to get object info: %w", err)
	}
	return info.Size, nil
}

// GetHeaderBytes reads the first n bytes of an object
func (a *Adapter) GetHeaderBytes(ctx context.Context, objectKey string, n int64) ([]byte, error) {
	opts := minio.GetObjectOptions{}
	err := opts.SetRange(0, n-1)
	if err != nil {
		return nil, fmt.Errorf("failed to set range: %w", err)
	}

	object, err := a.client.GetObject(ctx, a.config.BucketName, objectKey, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get partial object: %w", err)
	}
	defer object.Close()

	buffer, err := io.ReadAll(io.LimitReader(object, n))
	if err != nil {
		return nil, fmt.Errorf("failed to read header bytes: %w", err)
	}

	return buffer, nil
}

// DeleteObject deletes an object from storage
func (a *Adapter) DeleteObject(ctx context.Context, objectKey string) error {
	err := a.client.RemoveObject(ctx, a.config.BucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	a.logger.Info("object deleted",
		slog.String("objectKey", objectKey),
		slog.String("bucket", a.config.BucketName))

	return nil
}
