package proxy_test

import (
	"context"
	"drm-play/internal/adapters/eventbroker"
	"drm-play/internal/adapters/provider"
	"drm-play/internal/adapters/provider/vdocipher"
	"drm-play/internal/config"
	"drm-play/internal/core/domain"
	"drm-play/internal/core/service/proxy"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func configured() config.ProviderConfig {
	return config.ProviderConfig{APISecret: "secret", OTPTTL: 300 * time.Second}
}

type countingTransport struct {
	calls atomic.Int32
}

func (c *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	c.calls.Add(1)
	return nil, errors.New("unexpected outbound call")
}

func TestCredentialProxy_MissingSecret_NoOutboundCalls(t *testing.T) {
	// Arrange
	ctx := context.Background()
	transport := &countingTransport{}
	cfg := config.ProviderConfig{BaseURL: "https://provider.invalid/api"}
	client := vdocipher.NewClient(cfg, &http.Client{Transport: transport}, discardLogger)
	service := proxy.NewCredentialProxy(client, nil, cfg, discardLogger)

	// Act
	_, initErr := service.InitUpload(ctx, "title", "file.mp4")
	_, otpErr := service.IssuePlaybackCredential(ctx, "vid123")
	_, statusErr := service.FetchStatus(ctx, "vid123")
	_, listErr := service.ListAssets(ctx)

	// Assert
	for _, err := range []error{initErr, otpErr, statusErr, listErr} {
		assert.ErrorIs(t, err, domain.ErrConfigMissing)
	}
	assert.Equal(t, int32(0), transport.calls.Load())
}

func TestCredentialProxy_InitUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("nominal", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockVideoProvider()
		credential := &domain.UploadCredential{
			AssetID:      "vid123",
			UploadTarget: "https://storage.example.com/upload",
			Fields:       domain.WithSuccessActions([]domain.FormField{{Name: "policy", Value: "p"}}),
		}
		mockProvider.On("CreateUpload", ctx, "My video").Return(credential, nil)
		service := proxy.NewCredentialProxy(mockProvider, nil, configured(), discardLogger)

		// Act
		result, err := service.InitUpload(ctx, "  My video ", "clip.mp4")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, credential, result)
		mockProvider.AssertExpectations(t)
	})

	t.Run("title falls back to filename", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockVideoProvider()
		mockProvider.On("CreateUpload", ctx, "clip.mp4").Return(&domain.UploadCredential{AssetID: "vid1"}, nil)
		service := proxy.NewCredentialProxy(mockProvider, nil, configured(), discardLogger)

		// Act
		_, err := service.InitUpload(ctx, "", "clip.mp4")

		// Assert
		require.NoError(t, err)
		mockProvider.AssertExpectations(t)
	})

	t.Run("missing title and filename", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockVideoProvider()
		service := proxy.NewCredentialProxy(mockProvider, nil, configured(), discardLogger)

		// Act
		_, err := service.InitUpload(ctx, " ", "")

		// Assert
		assert.ErrorIs(t, err, domain.ErrValidation)
		mockProvider.AssertNotCalled(t, "CreateUpload")
	})

	t.Run("provider error is passed through", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockVideoProvider()
		providerErr := &domain.ProviderError{StatusCode: 401, Body: []byte(`{"message":"bad secret"}`)}
		mockProvider.On("CreateUpload", ctx, "t").Return((*domain.UploadCredential)(nil), providerErr)
		service := proxy.NewCredentialProxy(mockProvider, nil, configured(), discardLogger)

		// Act
		_, err := service.InitUpload(ctx, "t", "")

		// Assert
		var target *domain.ProviderError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, 401, target.StatusCode)
		assert.JSONEq(t, `{"message":"bad secret"}`, string(target.Body))
	})

	t.Run("publishes upload initiated event", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockVideoProvider()
		mockPublisher := eventbroker.NewMockPublisher()
		mockProvider.On("CreateUpload", ctx, "t").Return(&domain.UploadCredential{AssetID: "vid9"}, nil)
		mockPublisher.On("Publish", ctx, mock.MatchedBy(func(e domain.AssetEvent) bool {
			return e.Type == domain.AssetEventUploadInitiated && e.AssetID == "vid9" && e.Status == domain.AssetStatusPreUpload
		})).Return(errors.New("nats down"))
		service := proxy.NewCredentialProxy(mockProvider, mockPublisher, configured(), discardLogger)

		// Act
		_, err := service.InitUpload(ctx, "t", "")

		// Assert
		require.NoError(t, err)
		mockPublisher.AssertExpectations(t)
	})
}

func TestCredentialProxy_IssuePlaybackCredential(t *testing.T) {
	ctx := context.Background()

	t.Run("dev environment admits localhost", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockVideoProvider()
		cfg := configured()
		cfg.AllowLocalhost = true
		cfg.AllowedOrigins = []string{"app.example.com"}
		cred := &domain.PlaybackCredential{AssetID: "vid123", OTP: "otp", PlaybackInfo: "info"}
		mockProvider.On("CreateOTP", ctx, domain.AssetID("vid123"), domain.OTPOptions{
			TTL:                300 * time.Second,
			AllowedHrefPattern: `app\.example\.com|localhost(:\d+)?|127\.0\.0\.1(:\d+)?`,
		}).Return(cred, nil)
		service := proxy.NewCredentialProxy(mockProvider, nil, cfg, discardLogger)

		// Act
		result, err := service.IssuePlaybackCredential(ctx, "vid123")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, cred, result)
		mockProvider.AssertExpectations(t)
	})

	t.Run("production sends only configured origins", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockVideoProvider()
		cfg := configured()
		cfg.AllowedOrigins = []string{"app.example.com", " "}
		mockProvider.On("CreateOTP", ctx, domain.AssetID("vid123"), domain.OTPOptions{
			TTL:                300 * time.Second,
			AllowedHrefPattern: `app\.example\.com`,
		}).Return(&domain.PlaybackCredential{OTP: "o", PlaybackInfo: "p"}, nil)
		service := proxy.NewCredentialProxy(mockProvider, nil, cfg, discardLogger)

		// Act
		_, err := service.IssuePlaybackCredential(ctx, "vid123")

		// Assert
		require.NoError(t, err)
		mockProvider.AssertExpectations(t)
	})

	t.Run("production without origins defers to dashboard whitelist", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockVideoProvider()
		mockProvider.On("CreateOTP", ctx, domain.AssetID("vid123"), domain.OTPOptions{TTL: 300 * time.Second}).
			Return(&domain.PlaybackCredential{OTP: "o", PlaybackInfo: "p"}, nil)
		service := proxy.NewCredentialProxy(mockProvider, nil, configured(), discardLogger)

		// Act
		_, err := service.IssuePlaybackCredential(ctx, "vid123")

		// Assert
		require.NoError(t, err)
		mockProvider.AssertExpectations(t)
	})

	t.Run("default ttl", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockVideoProvider()
		mockProvider.On("CreateOTP", ctx, domain.AssetID("vid123"), domain.OTPOptions{TTL: 300 * time.Second}).
			Return(&domain.PlaybackCredential{OTP: "o", PlaybackInfo: "p"}, nil)
		service := proxy.NewCredentialProxy(mockProvider, nil, config.ProviderConfig{APISecret: "s"}, discardLogger)

		// Act
		_, err := service.IssuePlaybackCredential(ctx, "vid123")

		// Assert
		require.NoError(t, err)
		mockProvider.AssertExpectations(t)
	})

	t.Run("empty video id", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockVideoProvider()
		service := proxy.NewCredentialProxy(mockProvider, nil, configured(), discardLogger)

		// Act
		_, err := service.IssuePlaybackCredential(ctx, "")

		// Assert
		assert.ErrorIs(t, err, domain.ErrValidation)
		mockProvider.AssertNotCalled(t, "CreateOTP")
	})

	t.Run("provider forbidden", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockVideoProvider()
		providerErr := &domain.ProviderError{StatusCode: http.StatusForbidden, Body: []byte(`{"message":"forbidden"}`)}
		mockProvider.On("CreateOTP", ctx, domain.AssetID("vid123"), mock.Anything).Return((*domain.PlaybackCredential)(nil), providerErr)
		service := proxy.NewCredentialProxy(mockProvider, nil, configured(), discardLogger)

		// Act
		result, err := service.IssuePlaybackCredential(ctx, "vid123")

		// Assert
		assert.Nil(t, result)
		var target *domain.ProviderError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, http.StatusForbidden, target.StatusCode)
	})
}

func TestCredentialProxy_FetchStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("idempotent read", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockVideoProvider()
		summary := &domain.AssetSummary{ID: "vid123", Title: "t", Status: domain.AssetStatusQueued}
		mockProvider.On("GetVideo", ctx, domain.AssetID("vid123")).Return(summary, nil).Twice()
		service := proxy.NewCredentialProxy(mockProvider, nil, configured(), discardLogger)

		// Act
		first, err1 := service.FetchStatus(ctx, "vid123")
		second, err2 := service.FetchStatus(ctx, "vid123")

		// Assert
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, first.Status, second.Status)
		mockProvider.AssertExpectations(t)
	})

	t.Run("publishes ready event", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockVideoProvider()
		mockPublisher := eventbroker.NewMockPublisher()
		mockProvider.On("GetVideo", ctx, domain.AssetID("vid123")).Return(&domain.AssetSummary{ID: "vid123", Status: domain.AssetStatusReady}, nil)
		mockPublisher.On("Publish", ctx, mock.MatchedBy(func(e domain.AssetEvent) bool {
			return e.Type == domain.AssetEventReady && e.AssetID == "vid123"
		})).Return(nil)
		service := proxy.NewCredentialProxy(mockProvider, mockPublisher, configured(), discardLogger)

		// Act
		_, err := service.FetchStatus(ctx, "vid123")

		// Assert
		require.NoError(t, err)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("empty video id", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockVideoProvider()
		service := proxy.NewCredentialProxy(mockProvider, nil, configured(), discardLogger)

		// Act
		_, err := service.FetchStatus(ctx, " ")

		// Assert
		assert.ErrorIs(t, err, domain.ErrValidation)
		mockProvider.AssertNotCalled(t, "GetVideo")
	})
}

func TestCredentialProxy_ListAssets(t *testing.T) {
	ctx := context.Background()

	t.Run("nil rows become empty list", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockVideoProvider()
		mockProvider.On("ListVideos", ctx).Return(([]domain.AssetSummary)(nil), nil)
		service := proxy.NewCredentialProxy(mockProvider, nil, configured(), discardLogger)

		// Act
		assets, err := service.ListAssets(ctx)

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, assets)
		assert.Empty(t, assets)
	})

	t.Run("provider error", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockVideoProvider()
		mockProvider.On("ListVideos", ctx).Return(([]domain.AssetSummary)(nil), &domain.ProviderError{StatusCode: 500})
		service := proxy.NewCredentialProxy(mockProvider, nil, configured(), discardLogger)

		// Act
		_, err := service.ListAssets(ctx)

		// Assert
		var target *domain.ProviderError
		assert.ErrorAs(t, err, &target)
	})
}
