package port

import (
	"drm-play/internal/core/domain"
	"html/template"
)

// Player is an interface to define an embeddable provider player
type Player interface {
	Attach(credential domain.PlaybackCredential, container string) (PlayerHandle, error)
}

// PlayerHandle is a player attached to a container
type PlayerHandle interface {
	OnError(callback func(domain.PlayerError))
	// Report delivers an error raised by the player to the registered callbacks
	Report(err domain.PlayerError)
	Embed() template.HTML
}
