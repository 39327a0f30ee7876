package chi

import (
	"drm-play/internal/adapters/handlers/http/chi/sandbox"
	"drm-play/internal/adapters/handlers/http/chi/v1/player"
	"drm-play/internal/adapters/handlers/http/chi/v1/video"
	"drm-play/internal/adapters/handlers/http/chi/web"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds http.Handler with chi. Timeouts and body limits are set per
// route group since uploads stream far more than the JSON endpoints.
func NewRouter(logger *slog.Logger, videoHandler *video.HandlerV1, playerHandler *player.HandlerV1, webHandler *web.Handler, env string) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger, "/health"))
	r.Use(middleware.Recoverer)

	if env != "prod" && env != "PROD" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/videos", videoHandler.Routes())
		r.Mount("/player", playerHandler.Routes())
	})

	r.Get("/health", health)

	if webHandler != nil {
		r.Mount("/", webHandler.Routes())
	}

	return r
}

// NewSandboxRouter builds the http.Handler of the provider emulator
func NewSandboxRouter(logger *slog.Logger, sandboxHandler *sandbox.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger, "/health"))
	r.Use(middleware.Recoverer)

	r.Mount("/api/videos", sandboxHandler.Routes())
	r.Get("/health", health)

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
