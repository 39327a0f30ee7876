package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the configuration of the api and the operator CLI
type Config struct {
	Env      Env
	Provider ProviderConfig
	Player   PlayerConfig
	Upload   FileUploadConfig
	Poll     PollConfig
	Events   EventsConfig
	Server   ServerConfig
	Client   ClientConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

// IsProd reports whether the environment is production
func (e Env) IsProd() bool {
	return e.Env == "prod" || e.Env == "PROD"
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

// ProviderConfig holds the provider secret. APISecret is not required so that
// its absence disables the proxy per request instead of failing at startup.
type ProviderConfig struct {
	APISecret      string        `envconfig:"VDOCIPHER_API_SECRET"`
	BaseURL        string        `envconfig:"VDOCIPHER_BASE_URL" default:"https://dev.vdocipher.com/api"`
	OTPTTL         time.Duration `envconfig:"VDOCIPHER_OTP_TTL" default:"300s"`
	AllowedOrigins []string      `envconfig:"VDOCIPHER_ALLOWED_ORIGINS"`
	Timeout        time.Duration `envconfig:"VDOCIPHER_TIMEOUT" default:"30s"`
	// AllowLocalhost admits localhost origins in the OTP domain allowance, set from Env outside prod
	AllowLocalhost bool `ignored:"true"`
}

// Configured reports whether the provider secret is present
func (p ProviderConfig) Configured() bool {
	return p.APISecret != ""
}

type PlayerConfig struct {
	Mode            string `envconfig:"PLAYER_MODE" default:"script"`
	ScriptURL       string `envconfig:"PLAYER_SCRIPT_URL" default:"https://player.vdocipher.com/playerAssets/1.6.10/vdo.js"`
	IframeURL       string `envconfig:"PLAYER_IFRAME_URL" default:"https://player.vdocipher.com/v2/"`
	ErrorReportPath string `envconfig:"PLAYER_ERROR_REPORT_PATH" default:"/api/v1/player/errors"`
	// WhitelistHost is the origin named in the domain restriction remediation message
	WhitelistHost string `envconfig:"PLAYER_WHITELIST_HOST" default:"localhost:8080"`
}

type FileUploadConfig struct {
	MaxSize     int64         `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"2147483648"` // 2GB
	MemoryLimit int64         `envconfig:"UPLOAD_MEMORY_LIMIT" default:"33554432"`    // 32MB
	Timeout     time.Duration `envconfig:"UPLOAD_TIMEOUT" default:"30m"`
}

type PollConfig struct {
	Interval    time.Duration `envconfig:"POLL_INTERVAL" default:"10s"`
	MaxAttempts int           `envconfig:"POLL_MAX_ATTEMPTS" default:"60"`
}

// EventsConfig is the lifecycle event stream published by the api. Only the
// server url is shared with the sandbox bucket events.
type EventsConfig struct {
	Enabled    bool   `envconfig:"EVENTS_ENABLED" default:"false"`
	NATSURL    string `envconfig:"NATS_URL" default:"nats://localhost:4222"`
	StreamName string `envconfig:"EVENTS_STREAM_NAME" default:"VIDEO_EVENTS"`
	Subject    string `envconfig:"EVENTS_SUBJECT" default:"videos.lifecycle"`
	ClientName string `envconfig:"EVENTS_CLIENT_NAME" default:"drm-play-api"`
}

// NATS returns the adapter configuration of the lifecycle stream
func (e EventsConfig) NATS() NATSConfig {
	return NATSConfig{
		URL:          e.NATSURL,
		StreamName:   e.StreamName,
		ConsumerName: e.ClientName,
		Subject:      e.Subject,
	}
}

// ClientConfig is used by vdoctl to reach the api
type ClientConfig struct {
	BaseURL string        `envconfig:"DRMPLAY_URL" default:"http://localhost:8080"`
	Timeout time.Duration `envconfig:"DRMPLAY_TIMEOUT" default:"30s"`
}

// NATSConfig holds the parameters of the nats adapters. It is built from
// EventsConfig or BucketEventsConfig so each binary keeps its own stream.
type NATSConfig struct {
	URL          string
	StreamName   string
	ConsumerName string
	Subject      string
	DeliverGroup string
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	cfg.Provider.AllowLocalhost = !cfg.Env.IsProd()

	return &cfg, nil
}
