package storage

import (
	"context"
	"drm-play/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) GeneratePresignedPost(ctx context.Context, objectKey string) (*domain.PostPolicy, error) {
	args := m.Called(ctx, objectKey)
	return args.Get(0).(*domain.PostPolicy), args.Error(1)
}

func (m *MockStorage) GetObjectSize(ctx context.Context, objectKey string) (int64, error) {
	args := m.Called(ctx, objectKey)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) GetHeaderBytes(ctx context.Context, objectKey string, n int64) ([]byte, error) {
	args := m.Called(ctx, objectKey, n)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStorage) DeleteObject(ctx context.Context, objectKey string) error {
	args := m.Called(ctx, objectKey)
	return args.Error(0)
}
