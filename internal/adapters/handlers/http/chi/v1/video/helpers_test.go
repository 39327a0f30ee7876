package video_test

import (
	"drm-play/internal/adapters/handlers/http/chi"
	"drm-play/internal/adapters/handlers/http/chi/v1/player"
	"drm-play/internal/adapters/handlers/http/chi/v1/video"
	"drm-play/internal/config"
	"drm-play/internal/core/service/playback"
	"drm-play/internal/core/service/proxy"
	"drm-play/internal/core/service/upload"
	"io"
	"log/slog"
	"net/http"
	"time"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var uploadConfig = config.FileUploadConfig{MaxSize: 10 << 20, MemoryLimit: 1 << 20, Timeout: time.Minute}

func newRouter(mockProxy *proxy.MockCredentialProxy, mockUpload *upload.MockUploadService) http.Handler {
	videoHandler := video.NewVideoHandlerV1(mockProxy, mockUpload, uploadConfig, discardLogger)
	playerHandler := player.NewPlayerHandlerV1(playback.NewSessions(), "localhost:8080", discardLogger)
	return chi.NewRouter(discardLogger, videoHandler, playerHandler, nil, "")
}
