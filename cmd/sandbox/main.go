package main

import (
	"context"
	"drm-play/internal/adapters/eventbroker/nats"
	"drm-play/internal/adapters/handlers/http/chi"
	"drm-play/internal/adapters/handlers/http/chi/sandbox"
	"drm-play/internal/adapters/repository/memory"
	"drm-play/internal/adapters/storage/minio"
	"drm-play/internal/config"
	"drm-play/internal/core/port"
	"drm-play/internal/core/service/encoder"
	"drm-play/internal/core/service/minioevent"
	hosting "drm-play/internal/core/service/sandbox"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadSandbox()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}
	logger.Info("minio adapter initialized", "bucket", cfg.Minio.BucketName)

	//services
	store := memory.NewAssetRepository()
	hostingService := hosting.NewHostingService(store, minioAdapter, cfg.Minio.UploadKeyPrefix, logger)
	encodingService := encoder.NewEncodingService(store, minioAdapter, cfg.Encoder, logger)
	minioMessageService := minioevent.NewMinioEventService(store, minioAdapter, logger)

	natsConsumer, err := nats.NewNATSConsumer(cfg.Events.NATS(), logger)
	if err != nil {
		logger.Error("failed to create NATS consumer", "error", err)
		os.Exit(1)
	}
	if err := natsConsumer.EnsureStream(ctx); err != nil {
		logger.Error("failed to create NATS stream", "error", err)
		os.Exit(1)
	}

	router := chi.NewSandboxRouter(logger, sandbox.NewHandler(hostingService, cfg.Server.APISecret, logger))
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting sandbox server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("sandbox server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := natsConsumer.Subscribe(gctx, minioMessageService); err != nil {
			return fmt.Errorf("subscribe to NATS: %w", err)
		}
		logger.Info("NATS subscription active", "subject", cfg.Events.Subject)
		return nil
	})

	g.Go(func() error {
		runEncoder(gctx, encodingService, cfg.Encoder.RunEvery, logger)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("gracefully shutting down sandbox")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown server", "error", err)
		}
		if err := natsConsumer.Close(); err != nil {
			logger.Error("failed to close NATS consumer", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("sandbox stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("sandbox shutdown complete")
}

// runEncoder advances the simulated encoding pipeline every tick until ctx is done
func runEncoder(ctx context.Context, service port.EncodingService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("encoder task initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			if promoted, err := service.PromoteQueued(ctx, now); err != nil {
				logger.Error("failed to promote queued assets", "error", err)
			} else if promoted > 0 {
				logger.Info("queued assets promoted", "count", promoted)
			}
			if _, err := service.ExpirePreUpload(ctx, now); err != nil {
				logger.Error("failed to expire pre-upload assets", "error", err)
			}
		case <-ctx.Done():
			logger.Info("encoder task stopped")
			return
		}
	}
}
