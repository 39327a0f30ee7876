package nats

import (
	"context"
	"drm-play/internal/config"
	"drm-play/internal/core/domain"
	"drm-play/internal/core/port"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

var _ port.EventPublisher = (*Publisher)(nil)

// Publisher writes asset lifecycle events to JetStream on <subject>.<event type>
type Publisher struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
}

// NewNATSPublisher connects and makes sure the stream capturing <subject>.> exists
func NewNATSPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (*Publisher, error) {
	logger = logger.With("adapter", "nats-publisher", "stream", cfg.StreamName)
	conn, js, err := connect(cfg.URL, cfg.ConsumerName+"-publisher", logger)
	if err != nil {
		return nil, err
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{cfg.Subject + ".>"},
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create stream %s: %w", cfg.StreamName, err)
	}

	return &Publisher{
		logger: logger,
		conn:   conn,
		js:     js,
		config: cfg,
	}, nil
}

// Subject returns the subject an event of type t is published on
func (p *Publisher) Subject(t domain.AssetEventType) string {
	return p.config.Subject + "." + string(t)
}

func (p *Publisher) Publish(ctx context.Context, event domain.AssetEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	msg := nats.NewMsg(p.Subject(event.Type))
	msg.Data = data
	msg.Header.Set(nats.MsgIdHdr, event.ID)

	ack, err := p.js.PublishMsg(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}
	p.logger.Debug("event published", "type", event.Type, "video_id", event.AssetID, "seq", ack.Sequence)
	return nil
}

func (p *Publisher) Close() error {
	if p.conn == nil {
		return nil
	}
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
		return err
	}
	return nil
}
