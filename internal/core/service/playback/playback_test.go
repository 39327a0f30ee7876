package playback_test

import (
	"context"
	"drm-play/internal/adapters/player"
	"drm-play/internal/core/domain"
	"drm-play/internal/core/service/playback"
	"drm-play/internal/core/service/proxy"
	"drm-play/internal/core/service/status"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func readyState(id domain.AssetID) status.State {
	s := status.Initial(id)
	s.Status = domain.AssetStatusReady
	return s
}

func credentialFor(id domain.AssetID, otp string) *domain.PlaybackCredential {
	now := time.Now()
	return &domain.PlaybackCredential{AssetID: id, OTP: otp, PlaybackInfo: "info", IssuedAt: now, ExpiresAt: now.Add(300 * time.Second)}
}

func TestInitializer_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("not ready", func(t *testing.T) {
		// Arrange
		mockProxy := proxy.NewMockCredentialProxy()
		mockPlayer := player.NewMockPlayer()
		state := status.Initial("vid123")
		state.Status = domain.AssetStatusQueued
		initializer := playback.NewInitializer(mockProxy, mockPlayer, "localhost:8080", discardLogger)

		// Act
		session, err := initializer.Start(ctx, state, "player")

		// Assert
		assert.Nil(t, session)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.ErrorIs(t, err, domain.ErrAssetNotReady)
		mockProxy.AssertNotCalled(t, "IssuePlaybackCredential")
	})

	t.Run("fresh credential on every start", func(t *testing.T) {
		// Arrange
		mockProxy := proxy.NewMockCredentialProxy()
		mockPlayer := player.NewMockPlayer()
		mockProxy.On("IssuePlaybackCredential", ctx, domain.AssetID("vid123")).Return(credentialFor("vid123", "otp-1"), nil).Once()
		mockProxy.On("IssuePlaybackCredential", ctx, domain.AssetID("vid123")).Return(credentialFor("vid123", "otp-2"), nil).Once()
		mockPlayer.On("Attach", mock.Anything, "player").Return(player.NewHandle(""), nil)
		initializer := playback.NewInitializer(mockProxy, mockPlayer, "localhost:8080", discardLogger)

		// Act
		first, err1 := initializer.Start(ctx, readyState("vid123"), "player")
		second, err2 := initializer.Start(ctx, readyState("vid123"), "player")

		// Assert
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, "otp-1", first.Credential.OTP)
		assert.Equal(t, "otp-2", second.Credential.OTP)
		mockProxy.AssertNumberOfCalls(t, "IssuePlaybackCredential", 2)
	})

	t.Run("domain restriction remediation", func(t *testing.T) {
		// Arrange
		mockProxy := proxy.NewMockCredentialProxy()
		mockPlayer := player.NewMockPlayer()
		handle := player.NewHandle("")
		mockProxy.On("IssuePlaybackCredential", ctx, domain.AssetID("vid123")).Return(credentialFor("vid123", "otp"), nil)
		mockPlayer.On("Attach", mock.Anything, "player").Return(handle, nil)
		initializer := playback.NewInitializer(mockProxy, mockPlayer, "localhost:3000", discardLogger)
		session, err := initializer.Start(ctx, readyState("vid123"), "player")
		require.NoError(t, err)

		// Act
		handle.Report(domain.PlayerError{Code: domain.PlayerErrorDomainRestricted, Message: "domain not allowed"})

		// Assert
		assert.Contains(t, session.LastError(), "localhost:3000")
		assert.Contains(t, session.LastError(), domain.DomainWhitelistURL)
	})

	t.Run("other player error keeps its message", func(t *testing.T) {
		// Arrange
		mockProxy := proxy.NewMockCredentialProxy()
		mockPlayer := player.NewMockPlayer()
		handle := player.NewHandle("")
		mockProxy.On("IssuePlaybackCredential", ctx, domain.AssetID("vid123")).Return(credentialFor("vid123", "otp"), nil)
		mockPlayer.On("Attach", mock.Anything, "player").Return(handle, nil)
		initializer := playback.NewInitializer(mockProxy, mockPlayer, "localhost:3000", discardLogger)
		session, err := initializer.Start(ctx, readyState("vid123"), "player")
		require.NoError(t, err)

		// Act
		handle.Report(domain.PlayerError{Code: 2013, Message: "network down"})

		// Assert
		assert.Equal(t, "network down", session.LastError())
	})

	t.Run("provider rejection", func(t *testing.T) {
		// Arrange
		mockProxy := proxy.NewMockCredentialProxy()
		mockPlayer := player.NewMockPlayer()
		mockProxy.On("IssuePlaybackCredential", ctx, domain.AssetID("vid123")).
			Return((*domain.PlaybackCredential)(nil), &domain.ProviderError{StatusCode: 403, Body: []byte(`{"message":"forbidden"}`)})
		initializer := playback.NewInitializer(mockProxy, mockPlayer, "localhost:8080", discardLogger)

		// Act
		_, err := initializer.Start(ctx, readyState("vid123"), "player")

		// Assert
		var providerErr *domain.ProviderError
		require.ErrorAs(t, err, &providerErr)
		assert.Equal(t, 403, providerErr.StatusCode)
		mockPlayer.AssertNotCalled(t, "Attach")
	})
}

func TestLifecycle_Vid123(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockProxy := proxy.NewMockCredentialProxy()
	mockPlayer := player.NewMockPlayer()
	for _, s := range []domain.AssetStatus{domain.AssetStatusPreUpload, domain.AssetStatusQueued, domain.AssetStatusReady} {
		mockProxy.On("FetchStatus", ctx, domain.AssetID("vid123")).
			Return(&domain.AssetSummary{ID: "vid123", Status: s}, nil).Once()
	}
	mockProxy.On("IssuePlaybackCredential", ctx, domain.AssetID("vid123")).Return(credentialFor("vid123", "otp"), nil)
	mockPlayer.On("Attach", mock.Anything, "player").Return(player.NewHandle(""), nil)
	poller := status.NewPoller(mockProxy, "vid123", discardLogger)
	initializer := playback.NewInitializer(mockProxy, mockPlayer, "localhost:8080", discardLogger)

	// Act
	var observed []domain.AssetStatus
	var startErrs []error
	for i := 0; i < 3; i++ {
		st, err := poller.Check(ctx)
		require.NoError(t, err)
		observed = append(observed, st.Status)
		if _, err := initializer.Start(ctx, st, "player"); err != nil {
			startErrs = append(startErrs, err)
			mockProxy.AssertNotCalled(t, "IssuePlaybackCredential", ctx, domain.AssetID("vid123"))
		}
	}

	// Assert
	assert.Equal(t, []domain.AssetStatus{domain.AssetStatusPreUpload, domain.AssetStatusQueued, domain.AssetStatusReady}, observed)
	assert.Len(t, startErrs, 2)
	mockProxy.AssertNumberOfCalls(t, "IssuePlaybackCredential", 1)
	mockProxy.AssertNumberOfCalls(t, "FetchStatus", 3)
}
