package main

import (
	"context"
	"drm-play/internal/adapters/client/proxyclient"
	"drm-play/internal/adapters/player/iframe"
	"drm-play/internal/adapters/uploadtarget/formpost"
	"drm-play/internal/config"
	"drm-play/internal/core/domain"
	"drm-play/internal/core/service/playback"
	"drm-play/internal/core/service/status"
	"drm-play/internal/core/service/upload"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"
)

const usage = `usage: vdoctl <command> [flags]

commands:
  upload [-title T] FILE   upload a video and print its id
  status ID                check the status once
  watch [-interval D] [-max N] ID
                           poll until ready
  play ID                  print a fresh player URL for a ready video
  list                     list videos
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type app struct {
	cfg    *config.Config
	client *proxyclient.Client
	logger *slog.Logger
	out    io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return 1
	}

	a := &app{
		cfg:    cfg,
		client: proxyclient.NewClient(cfg.Client, nil, logger),
		logger: logger,
		out:    stdout,
	}

	var cmdErr error
	switch args[0] {
	case "upload":
		cmdErr = a.upload(ctx, args[1:])
	case "status":
		cmdErr = a.status(ctx, args[1:])
	case "watch":
		cmdErr = a.watch(ctx, args[1:])
	case "play":
		cmdErr = a.play(ctx, args[1:])
	case "list":
		cmdErr = a.list(ctx)
	default:
		fmt.Fprint(stderr, usage)
		return 2
	}

	if cmdErr != nil {
		fmt.Fprintln(stderr, "error:", describe(cmdErr))
		return 1
	}
	return 0
}

func (a *app) upload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	title := fs.String("title", "", "video title, defaults to the file name")
	if err := fs.Parse(args); err != nil {
		return domain.Validationf("%v", err)
	}
	if fs.NArg() != 1 {
		return domain.Validationf("upload takes exactly one file")
	}

	path := fs.Arg(0)
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	submitter := formpost.NewSubmitter(&http.Client{Timeout: a.cfg.Upload.Timeout}, a.logger)
	service := upload.NewUploadService(a.client, submitter, nil, a.logger)

	videoID, err := service.Upload(ctx, file, filepath.Base(path), *title)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, videoID)
	return nil
}

func assetArg(name string, args []string) (domain.AssetID, error) {
	if len(args) != 1 || args[0] == "" {
		return "", domain.Validationf("%s takes exactly one video id", name)
	}
	return domain.AssetID(args[0]), nil
}

func (a *app) status(ctx context.Context, args []string) error {
	videoID, err := assetArg("status", args)
	if err != nil {
		return err
	}

	st, err := status.NewPoller(a.client, videoID, a.logger).Check(ctx)
	if err != nil {
		return err
	}
	a.printState(st)
	return nil
}

func (a *app) watch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	interval := fs.Duration("interval", a.cfg.Poll.Interval, "delay between checks")
	maxAttempts := fs.Int("max", a.cfg.Poll.MaxAttempts, "checks before giving up")
	if err := fs.Parse(args); err != nil {
		return domain.Validationf("%v", err)
	}
	videoID, err := assetArg("watch", fs.Args())
	if err != nil {
		return err
	}

	st, err := status.NewPoller(a.client, videoID, a.logger).Watch(ctx, *interval, *maxAttempts)
	a.printState(st)
	if errors.Is(err, domain.ErrPollLimit) {
		return fmt.Errorf("%w after %d checks, run watch again or check the provider dashboard", err, st.Attempts)
	}
	return err
}

func (a *app) play(ctx context.Context, args []string) error {
	videoID, err := assetArg("play", args)
	if err != nil {
		return err
	}

	st, err := status.NewPoller(a.client, videoID, a.logger).Check(ctx)
	if err != nil {
		return err
	}

	iframePlayer := iframe.NewPlayer(a.cfg.Player)
	session, err := playback.NewInitializer(a.client, iframePlayer, a.cfg.Player.WhitelistHost, a.logger).Start(ctx, st, "player")
	if err != nil {
		if errors.Is(err, domain.ErrAssetNotReady) {
			a.printState(st)
		}
		return err
	}

	playerURL, err := iframePlayer.URL(session.Credential)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, playerURL)
	fmt.Fprintf(a.out, "expires at %s\n", session.Credential.ExpiresAt.Format(time.RFC3339))
	return nil
}

func (a *app) list(ctx context.Context) error {
	assets, err := a.client.ListAssets(ctx)
	if err != nil {
		return err
	}
	if len(assets) == 0 {
		fmt.Fprintln(a.out, domain.NoAssetsMessage)
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tLENGTH\tUPLOADED")
	for _, asset := range assets {
		uploaded := "-"
		if asset.UploadTime != nil {
			uploaded = asset.UploadTime.Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.0fs\t%s\n", asset.ID, asset.Title, asset.Status, asset.Length, uploaded)
	}
	return tw.Flush()
}

func (a *app) printState(st status.State) {
	fmt.Fprintf(a.out, "%s\t%s\n", st.AssetID, st.Status)
}

// describe renders err for an operator
func describe(err error) string {
	var providerErr *domain.ProviderError
	var uploadErr *domain.UploadError
	switch {
	case errors.As(err, &providerErr):
		return fmt.Sprintf("%v: %s", err, providerErr.Body)
	case errors.As(err, &uploadErr):
		return fmt.Sprintf("%v: %s", err, uploadErr.Body)
	default:
		return err.Error()
	}
}
