package proxy

import (
	"context"
	"drm-play/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockCredentialProxy is a mock implementation of CredentialProxy
type MockCredentialProxy struct {
	mock.Mock
}

// NewMockCredentialProxy creates a new MockCredentialProxy
func NewMockCredentialProxy() *MockCredentialProxy {
	return &MockCredentialProxy{}
}

func (m *MockCredentialProxy) InitUpload(ctx context.Context, title string, filename string) (*domain.UploadCredential, error) {
	args := m.Called(ctx, title, filename)
	return args.Get(0).(*domain.UploadCredential), args.Error(1)
}

func (m *MockCredentialProxy) FetchStatus(ctx context.Context, assetID domain.AssetID) (*domain.AssetSummary, error) {
	args := m.Called(ctx, assetID)
	return args.Get(0).(*domain.AssetSummary), args.Error(1)
}

func (m *MockCredentialProxy) IssuePlaybackCredential(ctx context.Context, assetID domain.AssetID) (*domain.PlaybackCredential, error) {
	args := m.Called(ctx, assetID)
	return args.Get(0).(*domain.PlaybackCredential), args.Error(1)
}

func (m *MockCredentialProxy) ListAssets(ctx context.Context) ([]domain.AssetSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AssetSummary), args.Error(1)
}
