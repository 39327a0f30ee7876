package proxy

import (
	"context"
	"drm-play/internal/config"
	"drm-play/internal/core/domain"
	"drm-play/internal/core/port"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultOTPTTL = 300 * time.Second

// localhostPatterns are admitted by the OTP domain allowance outside production
var localhostPatterns = []string{`localhost(:\d+)?`, `127\.0\.0\.1(:\d+)?`}

type credentialProxy struct {
	provider  port.VideoProvider
	publisher port.EventPublisher
	cfg       config.ProviderConfig
	logger    *slog.Logger
}

// NewCredentialProxy creates a new credential proxy. publisher may be nil.
func NewCredentialProxy(provider port.VideoProvider, publisher port.EventPublisher, cfg config.ProviderConfig, logger *slog.Logger) port.CredentialProxy {
	if cfg.OTPTTL <= 0 {
		cfg.OTPTTL = defaultOTPTTL
	}
	return &credentialProxy{
		provider:  provider,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

func (p *credentialProxy) ensureConfigured() error {
	if !p.cfg.Configured() {
		return domain.ErrConfigMissing
	}
	return nil
}

// otpOptions builds the OTP parameters, including the domain allowance regexp
func (p *credentialProxy) otpOptions() domain.OTPOptions {
	var patterns []string
	for _, origin := range p.cfg.AllowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		patterns = append(patterns, regexp.QuoteMeta(origin))
	}
	if p.cfg.AllowLocalhost {
		patterns = append(patterns, localhostPatterns...)
	}

	opts := domain.OTPOptions{TTL: p.cfg.OTPTTL}
	if len(patterns) > 0 {
		opts.AllowedHrefPattern = strings.Join(patterns, "|")
	}
	return opts
}

func (p *credentialProxy) publish(ctx context.Context, eventType domain.AssetEventType, summary domain.AssetSummary) {
	if p.publisher == nil {
		return
	}
	event := domain.AssetEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		AssetID:    summary.ID,
		Status:     summary.Status,
		Title:      summary.Title,
		OccurredAt: time.Now().UTC(),
	}
	if err := p.publisher.Publish(ctx, event); err != nil {
		p.logger.Warn("failed to publish asset event", "type", eventType, "video_id", summary.ID, "error", err)
	}
}
