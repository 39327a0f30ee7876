package upload

import (
	"context"
	"drm-play/internal/core/domain"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

// NewMockUploadService creates a new MockUploadService
func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) Upload(ctx context.Context, file io.Reader, filename string, title string) (domain.AssetID, error) {
	args := m.Called(ctx, file, filename, title)
	return args.Get(0).(domain.AssetID), args.Error(1)
}

// MockSubmitter is a mock implementation of UploadSubmitter
type MockSubmitter struct {
	mock.Mock
}

// NewMockSubmitter creates a new MockSubmitter
func NewMockSubmitter() *MockSubmitter {
	return &MockSubmitter{}
}

func (m *MockSubmitter) Submit(ctx context.Context, credential domain.UploadCredential, filename string, file io.Reader) error {
	args := m.Called(ctx, credential, filename, file)
	return args.Error(0)
}
