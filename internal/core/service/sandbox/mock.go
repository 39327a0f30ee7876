package sandbox

import (
	"context"
	"drm-play/internal/core/domain"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockHostingService is a mock implementation of HostingService
type MockHostingService struct {
	mock.Mock
}

func NewMockHostingService() *MockHostingService {
	return &MockHostingService{}
}

func (m *MockHostingService) CreateUpload(ctx context.Context, title string) (*domain.HostedAsset, *domain.PostPolicy, error) {
	args := m.Called(ctx, title)
	return args.Get(0).(*domain.HostedAsset), args.Get(1).(*domain.PostPolicy), args.Error(2)
}

func (m *MockHostingService) CreateOTP(ctx context.Context, id domain.AssetID, ttl time.Duration, allowedOrigin string) (string, string, error) {
	args := m.Called(ctx, id, ttl, allowedOrigin)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockHostingService) GetVideo(ctx context.Context, id domain.AssetID) (*domain.HostedAsset, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.HostedAsset), args.Error(1)
}

func (m *MockHostingService) ListVideos(ctx context.Context) ([]domain.HostedAsset, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.HostedAsset), args.Error(1)
}
