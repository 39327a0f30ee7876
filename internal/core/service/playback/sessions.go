package playback

import (
	"drm-play/internal/core/domain"
	"sync"
)

// Sessions tracks the latest session per asset so that errors relayed by the
// browser reach the listeners registered on that session.
type Sessions struct {
	mu       sync.Mutex
	sessions map[domain.AssetID]*Session
}

func NewSessions() *Sessions {
	return &Sessions{sessions: make(map[domain.AssetID]*Session)}
}

// Put records session as the current one for its asset, replacing any previous session
func (s *Sessions) Put(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Credential.AssetID] = session
}

// Get returns the current session of assetID
func (s *Sessions) Get(assetID domain.AssetID) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[assetID]
	return session, ok
}

// Report forwards err to the current session of assetID and returns the
// remediation text it produced. ok is false when no session is known.
func (s *Sessions) Report(assetID domain.AssetID, err domain.PlayerError) (msg string, ok bool) {
	session, ok := s.Get(assetID)
	if !ok {
		return "", false
	}
	session.Handle.Report(err)
	return session.LastError(), true
}
