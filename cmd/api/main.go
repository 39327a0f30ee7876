package main

import (
	"context"
	"drm-play/internal/adapters/eventbroker/nats"
	"drm-play/internal/adapters/handlers/http/chi"
	"drm-play/internal/adapters/handlers/http/chi/v1/player"
	"drm-play/internal/adapters/handlers/http/chi/v1/video"
	"drm-play/internal/adapters/handlers/http/chi/web"
	"drm-play/internal/adapters/player/iframe"
	"drm-play/internal/adapters/player/widget"
	"drm-play/internal/adapters/provider/vdocipher"
	"drm-play/internal/adapters/uploadtarget/formpost"
	"drm-play/internal/config"
	"drm-play/internal/core/port"
	"drm-play/internal/core/service/playback"
	"drm-play/internal/core/service/proxy"
	"drm-play/internal/core/service/upload"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if !cfg.Provider.Configured() {
		logger.Warn("VDOCIPHER_API_SECRET is not set, provider calls will be rejected")
	}

	//events
	var publisher port.EventPublisher
	if cfg.Events.Enabled {
		natsPublisher, err := nats.NewNATSPublisher(ctx, cfg.Events.NATS(), logger)
		if err != nil {
			logger.Error("failed to init nats publisher", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := natsPublisher.Close(); err != nil {
				logger.Error("failed to close nats publisher", "error", err)
			}
		}()
		publisher = natsPublisher
		logger.Info("asset events enabled", "stream", cfg.Events.StreamName)
	}

	//services
	provider := vdocipher.NewClient(cfg.Provider, nil, logger)
	proxyService := proxy.NewCredentialProxy(provider, publisher, cfg.Provider, logger)
	submitter := formpost.NewSubmitter(&http.Client{Timeout: cfg.Upload.Timeout}, logger)
	uploadService := upload.NewUploadService(proxyService, submitter, publisher, logger)
	sessions := playback.NewSessions()

	//http
	videoHandler := video.NewVideoHandlerV1(proxyService, uploadService, cfg.Upload, logger)
	playerHandler := player.NewPlayerHandlerV1(sessions, cfg.Player.WhitelistHost, logger)
	webHandler := web.NewHandler(proxyService, uploadService, playerFactory(cfg.Player), sessions, web.Options{
		WhitelistHost: cfg.Player.WhitelistHost,
		MaxUploadSize: cfg.Upload.MaxSize,
		MemoryLimit:   cfg.Upload.MemoryLimit,
		UploadTimeout: cfg.Upload.Timeout,
	}, logger)

	router := chi.NewRouter(logger, videoHandler, playerHandler, webHandler, cfg.Env.Env)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port, "player_mode", cfg.Player.Mode)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

// playerFactory returns a new Player per page so that the widget script is included once per page
func playerFactory(cfg config.PlayerConfig) web.PlayerFactory {
	if cfg.Mode == "iframe" {
		return func() port.Player { return iframe.NewPlayer(cfg) }
	}
	return func() port.Player { return widget.NewPlayer(cfg) }
}
