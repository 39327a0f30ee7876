package player

import (
	"drm-play/internal/adapters/handlers/http/chi/v1/response"
	"drm-play/internal/core/domain"
	"drm-play/internal/core/service/playback"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// HandlerV1 relays errors raised by the browser player
type HandlerV1 struct {
	sessions      *playback.Sessions
	whitelistHost string
	logger        *slog.Logger
}

// NewPlayerHandlerV1 creates HandlerV1
func NewPlayerHandlerV1(sessions *playback.Sessions, whitelistHost string, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		sessions:      sessions,
		whitelistHost: whitelistHost,
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestSize(64 << 10))
	router.Post("/errors", h.ReportErrorV1)
	return router
}

// V1PlayerErrorRequest is an error event of the embedded player
type V1PlayerErrorRequest struct {
	VideoID domain.AssetID `json:"videoId"`
	Code    int            `json:"code"`
	Message string         `json:"message"`
}

// V1PlayerErrorResponse carries the message to show to the viewer
type V1PlayerErrorResponse struct {
	Message string `json:"message"`
}

func (h *HandlerV1) ReportErrorV1(w http.ResponseWriter, r *http.Request) {

	var req V1PlayerErrorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding player error", "error", err)
		response.JSON(w, h.logger, http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}

	playerErr := domain.PlayerError{Code: req.Code, Message: req.Message}
	msg, ok := h.sessions.Report(req.VideoID, playerErr)
	if !ok {
		h.logger.Warn("player error without session", "video_id", req.VideoID, "code", req.Code, "message", req.Message)
		msg = playerErr.Remediation(h.whitelistHost)
	}

	response.JSON(w, h.logger, http.StatusOK, V1PlayerErrorResponse{Message: msg})
}
