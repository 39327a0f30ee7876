package widget

import (
	"bytes"
	"drm-play/internal/adapters/player"
	"drm-play/internal/config"
	"drm-play/internal/core/domain"
	"drm-play/internal/core/port"
	"fmt"
	"html/template"
	"sync"
)

var embedTemplate = template.Must(template.New("widget").Parse(`
{{- if .IncludeScript}}<script src="{{.ScriptURL}}"></script>
{{end -}}
<div id="{{.Container}}" class="player-container"></div>
<p id="{{.Container}}-error" class="player-error" hidden></p>
<script>
(function () {
  var container = document.getElementById({{.Container}});
  var errorBox = document.getElementById({{.ErrorID}});
  var video = vdo.add({
    otp: {{.OTP}},
    playbackInfo: {{.PlaybackInfo}},
    container: container
  });
  video.addEventListener("error", function (err) {
    var code = (err && err.code) || 0;
    var message = (err && err.message) || "";
    fetch({{.ReportPath}}, {
      method: "POST",
      headers: {"Content-Type": "application/json"},
      body: JSON.stringify({videoId: {{.VideoID}}, code: code, message: message})
    })
      .then(function (res) { return res.json(); })
      .then(function (body) { errorBox.textContent = body.message || body.error || message; })
      .catch(function () { errorBox.textContent = message || "Failed to load video"; })
      .finally(function () { errorBox.hidden = false; });
  });
})();
</script>`))

type embedData struct {
	IncludeScript bool
	ScriptURL     string
	Container     string
	ErrorID       string
	OTP           string
	PlaybackInfo  string
	VideoID       string
	ReportPath    string
}

// Player embeds the provider script player. One Player serves one page:
// the provider script tag is emitted by the first Attach only.
type Player struct {
	cfg config.PlayerConfig

	mu             sync.Mutex
	scriptIncluded bool
}

// NewPlayer creates a Player for a single page render
func NewPlayer(cfg config.PlayerConfig) *Player {
	return &Player{cfg: cfg}
}

func (p *Player) Attach(credential domain.PlaybackCredential, container string) (port.PlayerHandle, error) {
	if container == "" {
		return nil, domain.Validationf("player container is required")
	}
	if credential.OTP == "" || credential.PlaybackInfo == "" {
		return nil, domain.ErrInvalidCredential
	}

	p.mu.Lock()
	includeScript := !p.scriptIncluded
	p.scriptIncluded = true
	p.mu.Unlock()

	var buf bytes.Buffer
	err := embedTemplate.Execute(&buf, embedData{
		IncludeScript: includeScript,
		ScriptURL:     p.cfg.ScriptURL,
		Container:     container,
		ErrorID:       container + "-error",
		OTP:           credential.OTP,
		PlaybackInfo:  credential.PlaybackInfo,
		VideoID:       credential.AssetID.String(),
		ReportPath:    p.cfg.ErrorReportPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render player: %w", err)
	}

	return player.NewHandle(template.HTML(buf.String())), nil
}
