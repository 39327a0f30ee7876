package web

import (
	"drm-play/internal/adapters/handlers/http/chi/v1/response"
	"drm-play/internal/core/domain"
	"drm-play/internal/core/service/playback"
	"drm-play/internal/core/service/status"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type statusMessage struct {
	Kind    string
	Title   string
	Message string
}

type playerPage struct {
	Title         string
	Error         *banner
	VideoID       domain.AssetID
	Summary       *domain.AssetSummary
	StatusMessage *statusMessage
	Embed         template.HTML
	ExpiresAt     time.Time
}

// messageFor returns the banner shown for a non ready status
func messageFor(s domain.AssetStatus) *statusMessage {
	switch s.Category() {
	case domain.StatusCategoryReady:
		return nil
	case domain.StatusCategoryNotUpload:
		return &statusMessage{Kind: "warning", Title: "Video Not Uploaded", Message: "The video upload is not complete yet."}
	case domain.StatusCategoryProcessing:
		return &statusMessage{Kind: "info", Title: "Video Processing", Message: "Your video is being encoded and encrypted. This usually takes 2-5 minutes. Please check back shortly."}
	default:
		return &statusMessage{Kind: "info", Title: "Checking Status", Message: "Checking video status..."}
	}
}

// Player checks the status once and starts a playback session when the video is ready.
// Every render of a ready video requests a new credential.
func (h *Handler) Player(w http.ResponseWriter, r *http.Request) {
	videoID := domain.AssetID(chi.URLParam(r, "videoID"))
	page := playerPage{Title: "Player", VideoID: videoID}

	poller := status.NewPoller(h.proxy, videoID, h.logger)
	st, err := poller.Check(r.Context())
	if err != nil {
		page.Error = errorBanner("Error Loading Video", err)
		h.render(w, playerTemplate, response.StatusOf(err), page)
		return
	}
	page.Summary = st.Summary
	page.StatusMessage = messageFor(st.Status)

	if !st.Terminal() {
		h.render(w, playerTemplate, http.StatusOK, page)
		return
	}

	initializer := playback.NewInitializer(h.proxy, h.newPlayer(), h.whitelistHost, h.logger)
	session, err := initializer.Start(r.Context(), st, playerContainer)
	if err != nil {
		page.Error = errorBanner("Error Loading Video", err)
		h.render(w, playerTemplate, response.StatusOf(err), page)
		return
	}
	h.sessions.Put(session)

	page.Embed = session.Handle.Embed()
	page.ExpiresAt = session.Credential.ExpiresAt
	h.render(w, playerTemplate, http.StatusOK, page)
}
