package repository

import (
	"context"
	"drm-play/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockAssetRepository struct {
	mock.Mock
}

func NewMockAssetRepository() *MockAssetRepository {
	return &MockAssetRepository{}
}

func (m *MockAssetRepository) Create(ctx context.Context, asset domain.HostedAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) FindByID(ctx context.Context, id domain.AssetID) (*domain.HostedAsset, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.HostedAsset), args.Error(1)
}

func (m *MockAssetRepository) List(ctx context.Context) ([]domain.HostedAsset, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.HostedAsset), args.Error(1)
}

func (m *MockAssetRepository) Update(ctx context.Context, id domain.AssetID, fn func(*domain.HostedAsset) error) (*domain.HostedAsset, error) {
	args := m.Called(ctx, id, fn)
	return args.Get(0).(*domain.HostedAsset), args.Error(1)
}

func (m *MockAssetRepository) Delete(ctx context.Context, id domain.AssetID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAssetRepository) DeleteIf(ctx context.Context, id domain.AssetID, cond func(domain.HostedAsset) bool) (bool, error) {
	args := m.Called(ctx, id, cond)
	return args.Bool(0), args.Error(1)
}
