package web

import (
	"drm-play/internal/core/domain"
	"drm-play/internal/core/port"
	"drm-play/internal/core/service/playback"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// EmptyState is shown when the provider has no videos
const EmptyState = domain.NoAssetsMessage

const (
	// playerContainer is the element id the player attaches to
	playerContainer = "player"
	pageTimeout     = 60 * time.Second
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"duration": func(seconds float64) string {
		total := int(seconds)
		return fmt.Sprintf("%d:%02d", total/60, total%60)
	},
}

var (
	indexTemplate  = template.Must(template.New("index").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/index.html"))
	playerTemplate = template.Must(template.New("player").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/player.html"))
)

// PlayerFactory returns a Player for one page render
type PlayerFactory func() port.Player

// Handler serves the browser pages
type Handler struct {
	proxy         port.CredentialProxy
	uploadService port.UploadService
	newPlayer     PlayerFactory
	sessions      *playback.Sessions
	whitelistHost string
	maxUploadSize int64
	memoryLimit   int64
	uploadTimeout time.Duration
	logger        *slog.Logger
}

// Options are the page level settings of Handler
type Options struct {
	WhitelistHost string
	MaxUploadSize int64
	MemoryLimit   int64
	UploadTimeout time.Duration
}

// NewHandler creates Handler
func NewHandler(proxy port.CredentialProxy, uploadService port.UploadService, newPlayer PlayerFactory, sessions *playback.Sessions, opts Options, logger *slog.Logger) *Handler {
	return &Handler{
		proxy:         proxy,
		uploadService: uploadService,
		newPlayer:     newPlayer,
		sessions:      sessions,
		whitelistHost: opts.WhitelistHost,
		maxUploadSize: opts.MaxUploadSize,
		memoryLimit:   opts.MemoryLimit,
		uploadTimeout: opts.UploadTimeout,
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(pageTimeout))
		r.Get("/", h.Index)
		r.Get("/videos", h.OpenVideo)
		r.Get("/videos/{videoID}", h.Player)
	})
	router.With(
		middleware.Timeout(h.uploadTimeout),
		middleware.RequestSize(h.maxUploadSize),
	).Post("/upload", h.Upload)

	return router
}

type banner struct {
	Title   string
	Message string
}

func (h *Handler) render(w http.ResponseWriter, tmpl *template.Template, status int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		h.logger.Error("error rendering page", "error", err)
	}
}
