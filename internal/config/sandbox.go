package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// SandboxConfig is the configuration of the local provider emulator
type SandboxConfig struct {
	Env     Env
	Server  SandboxServerConfig
	Minio   MinioConfig
	Events  BucketEventsConfig
	Encoder EncoderConfig
}

type SandboxServerConfig struct {
	Host      string `envconfig:"SANDBOX_HOST" default:"localhost"`
	Port      string `envconfig:"SANDBOX_PORT" default:"8090"`
	APISecret string `envconfig:"SANDBOX_API_SECRET" required:"true"`
}

type MinioConfig struct {
	Endpoint   string `envconfig:"MINIO_ENDPOINT" required:"true"`
	BucketName string `envconfig:"MINIO_BUCKET_NAME" required:"true"`
	AccessKey  string `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey  string `envconfig:"MINIO_SECRET_KEY" required:"true"`
	UseSSL     bool   `envconfig:"MINIO_USE_SSL" default:"false"`
	Region     string `envconfig:"MINIO_REGION" default:"us-east-1"`

	// PublicURL overrides the scheme and host of the upload link handed to browsers
	PublicURL            string        `envconfig:"MINIO_PUBLIC_URL"`
	UploadPolicyDuration time.Duration `envconfig:"MINIO_UPLOAD_POLICY_DURATION" default:"30m"`
	UploadMaxSize        int64         `envconfig:"MINIO_UPLOAD_MAX_SIZE" default:"5368709120"` // 5GB
	UploadKeyPrefix      string        `envconfig:"MINIO_UPLOAD_KEY_PREFIX" default:"videos/"`
}

// BucketEventsConfig is the stream MinIO bucket notifications are delivered on
type BucketEventsConfig struct {
	NATSURL      string `envconfig:"NATS_URL" default:"nats://localhost:4222"`
	StreamName   string `envconfig:"BUCKET_EVENTS_STREAM_NAME" default:"MINIO_EVENTS"`
	Subject      string `envconfig:"BUCKET_EVENTS_SUBJECT" default:"minio.events"`
	ConsumerName string `envconfig:"BUCKET_EVENTS_CONSUMER_NAME" default:"drm-play-sandbox"`
	DeliverGroup string `envconfig:"BUCKET_EVENTS_DELIVER_GROUP"`
}

// NATS returns the adapter configuration of the bucket event stream
func (b BucketEventsConfig) NATS() NATSConfig {
	return NATSConfig{
		URL:          b.NATSURL,
		StreamName:   b.StreamName,
		ConsumerName: b.ConsumerName,
		Subject:      b.Subject,
		DeliverGroup: b.DeliverGroup,
	}
}

type EncoderConfig struct {
	EncodeDelay time.Duration `envconfig:"SANDBOX_ENCODE_DELAY" default:"30s"`
	RunEvery    time.Duration `envconfig:"SANDBOX_RUN_EVERY" default:"5s"`
	// PreUploadTTL is how long an asset may stay in pre-upload before it is dropped
	PreUploadTTL time.Duration `envconfig:"SANDBOX_PRE_UPLOAD_TTL" default:"1h"`
}

func LoadSandbox() (*SandboxConfig, error) {
	var cfg SandboxConfig

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
