package provider

import (
	"context"
	"drm-play/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockVideoProvider struct {
	mock.Mock
}

func NewMockVideoProvider() *MockVideoProvider {
	return &MockVideoProvider{}
}

func (m *MockVideoProvider) CreateUpload(ctx context.Context, title string) (*domain.UploadCredential, error) {
	args := m.Called(ctx, title)
	return args.Get(0).(*domain.UploadCredential), args.Error(1)
}

func (m *MockVideoProvider) CreateOTP(ctx context.Context, assetID domain.AssetID, opts domain.OTPOptions) (*domain.PlaybackCredential, error) {
	args := m.Called(ctx, assetID, opts)
	return args.Get(0).(*domain.PlaybackCredential), args.Error(1)
}

func (m *MockVideoProvider) GetVideo(ctx context.Context, assetID domain.AssetID) (*domain.AssetSummary, error) {
	args := m.Called(ctx, assetID)
	return args.Get(0).(*domain.AssetSummary), args.Error(1)
}

func (m *MockVideoProvider) ListVideos(ctx context.Context) ([]domain.AssetSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AssetSummary), args.Error(1)
}
