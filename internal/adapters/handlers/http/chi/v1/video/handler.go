package video

import (
	"drm-play/internal/config"
	"drm-play/internal/core/port"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	jsonBodyLimit  = 1 << 20 //1mb
	requestTimeout = 60 * time.Second
)

// HandlerV1 is the handler for v1 videos routes
type HandlerV1 struct {
	proxy         port.CredentialProxy
	uploadService port.UploadService
	uploadConfig  config.FileUploadConfig
	logger        *slog.Logger
}

// NewVideoHandlerV1 creates HandlerV1
func NewVideoHandlerV1(proxy port.CredentialProxy, uploadService port.UploadService, uploadConfig config.FileUploadConfig, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		proxy:         proxy,
		uploadService: uploadService,
		uploadConfig:  uploadConfig,
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		r.Use(middleware.RequestSize(jsonBodyLimit))
		r.Put("/", h.InitUploadV1)
		r.Post("/status", h.FetchStatusV1)
		r.Post("/otp", h.IssueOTPV1)
		r.Get("/", h.ListVideosV1)
	})

	router.With(
		middleware.Timeout(h.uploadConfig.Timeout),
		middleware.RequestSize(h.uploadConfig.MaxSize),
	).Post("/upload", h.UploadFileV1)

	return router
}
