package player

import (
	"drm-play/internal/core/domain"
	"drm-play/internal/core/port"

	"github.com/stretchr/testify/mock"
)

// MockPlayer is a mock implementation of Player
type MockPlayer struct {
	mock.Mock
}

// NewMockPlayer creates a new MockPlayer
func NewMockPlayer() *MockPlayer {
	return &MockPlayer{}
}

func (m *MockPlayer) Attach(credential domain.PlaybackCredential, container string) (port.PlayerHandle, error) {
	args := m.Called(credential, container)
	handle, _ := args.Get(0).(port.PlayerHandle)
	return handle, args.Error(1)
}
