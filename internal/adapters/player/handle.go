package player

import (
	"drm-play/internal/core/domain"
	"html/template"
	"sync"
)

// Handle is the PlayerHandle shared by the player strategies. The browser
// side relays its errors to the api, which forwards them through Report.
type Handle struct {
	embed template.HTML

	mu        sync.Mutex
	callbacks []func(domain.PlayerError)
}

// NewHandle creates a Handle rendering embed
func NewHandle(embed template.HTML) *Handle {
	return &Handle{embed: embed}
}

func (h *Handle) OnError(callback func(domain.PlayerError)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.callbacks = append(h.callbacks, callback)
}

func (h *Handle) Report(err domain.PlayerError) {
	h.mu.Lock()
	callbacks := make([]func(domain.PlayerError), len(h.callbacks))
	copy(callbacks, h.callbacks)
	h.mu.Unlock()

	for _, callback := range callbacks {
		callback(err)
	}
}

func (h *Handle) Embed() template.HTML {
	return h.embed
}
