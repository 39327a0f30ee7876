package iframe

import (
	"bytes"
	"drm-play/internal/adapters/player"
	"drm-play/internal/config"
	"drm-play/internal/core/domain"
	"drm-play/internal/core/port"
	"fmt"
	"html/template"
	"net/url"
)

var embedTemplate = template.Must(template.New("iframe").Parse(
	`<div id="{{.Container}}" class="player-container">` +
		`<iframe src="{{.Src}}" style="border:0;width:100%;aspect-ratio:16/9" allow="encrypted-media" allowfullscreen ` +
		`sandbox="allow-scripts allow-same-origin allow-presentation"></iframe>` +
		`</div>`))

// Player embeds the provider hosted iframe player
type Player struct {
	cfg config.PlayerConfig
}

func NewPlayer(cfg config.PlayerConfig) *Player {
	return &Player{cfg: cfg}
}

// URL returns the iframe address for credential
func (p *Player) URL(credential domain.PlaybackCredential) (string, error) {
	u, err := url.Parse(p.cfg.IframeURL)
	if err != nil {
		return "", fmt.Errorf("invalid iframe url: %w", err)
	}
	q := u.Query()
	q.Set("otp", credential.OTP)
	q.Set("playbackInfo", credential.PlaybackInfo)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (p *Player) Attach(credential domain.PlaybackCredential, container string) (port.PlayerHandle, error) {
	if container == "" {
		return nil, domain.Validationf("player container is required")
	}
	if credential.OTP == "" || credential.PlaybackInfo == "" {
		return nil, domain.ErrInvalidCredential
	}

	src, err := p.URL(credential)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	// src is a trusted provider URL built above
	if err := embedTemplate.Execute(&buf, struct {
		Container string
		Src       template.URL
	}{container, template.URL(src)}); err != nil {
		return nil, fmt.Errorf("failed to render player: %w", err)
	}

	return player.NewHandle(template.HTML(buf.String())), nil
}
