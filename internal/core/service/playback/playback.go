package playback

import (
	"context"
	"drm-play/internal/core/domain"
	"drm-play/internal/core/port"
	"drm-play/internal/core/service/status"
	"fmt"
	"log/slog"
	"sync"
)

// Session is a player attached to a fresh playback credential
type Session struct {
	Credential domain.PlaybackCredential
	Handle     port.PlayerHandle

	mu        sync.Mutex
	lastError string
}

// LastError returns the remediation text of the most recent player error, empty if none
func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *Session) setLastError(msg string) {
	s.mu.Lock()
	s.lastError = msg
	s.mu.Unlock()
}

type Initializer struct {
	issuer        port.PlaybackCredentialIssuer
	player        port.Player
	whitelistHost string
	logger        *slog.Logger
}

// NewInitializer creates an Initializer. whitelistHost is the origin named in domain restriction messages.
func NewInitializer(issuer port.PlaybackCredentialIssuer, player port.Player, whitelistHost string, logger *slog.Logger) *Initializer {
	return &Initializer{
		issuer:        issuer,
		player:        player,
		whitelistHost: whitelistHost,
		logger:        logger,
	}
}

// Start requests a new playback credential for a ready asset and attaches the player to container
func (i *Initializer) Start(ctx context.Context, state status.State, container string) (*Session, error) {
	if !state.Status.IsReady() {
		return nil, fmt.Errorf("%w: %w: status is %s", domain.ErrValidation, domain.ErrAssetNotReady, state.Status)
	}
	if container == "" {
		return nil, domain.Validationf("player container is required")
	}

	credential, err := i.issuer.IssuePlaybackCredential(ctx, state.AssetID)
	if err != nil {
		return nil, err
	}

	handle, err := i.player.Attach(*credential, container)
	if err != nil {
		return nil, fmt.Errorf("failed to attach player: %w", err)
	}

	session := &Session{Credential: *credential, Handle: handle}
	handle.OnError(func(playerErr domain.PlayerError) {
		msg := playerErr.Remediation(i.whitelistHost)
		i.logger.Warn("player error", "video_id", state.AssetID, "code", playerErr.Code, "message", playerErr.Message)
		session.setLastError(msg)
	})

	i.logger.Info("playback session started", "video_id", state.AssetID, "expires_at", credential.ExpiresAt)
	return session, nil
}
