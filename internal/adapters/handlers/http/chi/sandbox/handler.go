package sandbox

import (
	"crypto/subtle"
	"drm-play/internal/core/port"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	jsonBodyLimit  = 64 << 10 //64kb
	requestTimeout = 30 * time.Second
	authScheme     = "Apisecret "
)

// Handler serves the provider API emulated by the sandbox
type Handler struct {
	hosting   port.HostingService
	apiSecret string
	logger    *slog.Logger
}

// NewHandler creates Handler. Every route requires apiSecret.
func NewHandler(hosting port.HostingService, apiSecret string, logger *slog.Logger) *Handler {
	return &Handler{
		hosting:   hosting,
		apiSecret: apiSecret,
		logger:    logger,
	}
}

// Routes exposes handler routes
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(h.requireSecret)
	router.Use(middleware.Timeout(requestTimeout))
	router.Use(middleware.RequestSize(jsonBodyLimit))

	router.Put("/", h.CreateUpload)
	router.Get("/", h.ListVideos)
	router.Get("/{videoID}", h.GetVideo)
	router.Post("/{videoID}/otp", h.CreateOTP)

	return router
}

// MessageResponse is the provider failure body
type MessageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) requireSecret(next http.Handler) http.Handler {
	expected := []byte(authScheme + h.apiSecret)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := []byte(r.Header.Get("Authorization"))
		if h.apiSecret == "" || subtle.ConstantTimeCompare(got, expected) != 1 {
			h.writeJSON(w, http.StatusForbidden, MessageResponse{Message: "Invalid API secret"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
