package playback

import (
	"context"
	"drm-play/internal/core/service/status"

	"github.com/stretchr/testify/mock"
)

// MockInitializer is a mock implementation of the playback Initializer
type MockInitializer struct {
	mock.Mock
}

// NewMockInitializer creates a new MockInitializer
func NewMockInitializer() *MockInitializer {
	return &MockInitializer{}
}

func (m *MockInitializer) Start(ctx context.Context, state status.State, container string) (*Session, error) {
	args := m.Called(ctx, state, container)
	return args.Get(0).(*Session), args.Error(1)
}
