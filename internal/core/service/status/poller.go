package status

import (
	"context"
	"drm-play/internal/core/domain"
	"drm-play/internal/core/port"
	"log/slog"
	"sync"
	"time"
)

// Poller owns the status state of one view. Checks are operator triggered;
// Watch is the bounded auto-poll.
type Poller struct {
	fetcher port.StatusFetcher
	logger  *slog.Logger

	mu      sync.Mutex
	state   State
	busy    bool
	busyGen uint64
}

// NewPoller creates a Poller targeting assetID
func NewPoller(fetcher port.StatusFetcher, assetID domain.AssetID, logger *slog.Logger) *Poller {
	return &Poller{
		fetcher: fetcher,
		logger:  logger,
		state:   Initial(assetID),
	}
}

// State returns a snapshot of the current state
func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Retarget points the view at another asset. Responses still in flight for the
// previous target are discarded when they arrive.
func (p *Poller) Retarget(assetID domain.AssetID) State {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := Initial(assetID)
	next.Generation = p.state.Generation + 1
	p.state = next
	p.busy = false
	return p.state
}

// Check fetches the status once. It returns domain.ErrBusy while another check
// for the same target is outstanding and domain.ErrStale if the target changed
// before the response arrived.
func (p *Poller) Check(ctx context.Context) (State, error) {
	p.mu.Lock()
	if p.state.Terminal() {
		st := p.state
		p.mu.Unlock()
		return st, nil
	}
	if p.busy {
		st := p.state
		p.mu.Unlock()
		return st, domain.ErrBusy
	}
	p.busy = true
	gen := p.state.Generation
	p.busyGen = gen
	assetID := p.state.AssetID
	p.mu.Unlock()

	summary, err := p.fetcher.FetchStatus(ctx, assetID)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.busyGen == gen {
		p.busy = false
	}

	if gen != p.state.Generation {
		p.logger.Debug("discarding stale status response", "video_id", assetID)
		return p.state, domain.ErrStale
	}
	if err != nil {
		return p.state, err
	}

	p.state, _ = Transition(p.state, Observation{Generation: gen, Summary: *summary})
	p.logger.Info("status checked", "video_id", assetID, "status", p.state.Status, "attempt", p.state.Attempts)
	return p.state, nil
}

// Watch checks every interval until the asset is ready. It gives up with
// domain.ErrPollLimit after maxAttempts checks that did not reach ready.
// Failed checks are returned to the caller, not retried.
func (p *Poller) Watch(ctx context.Context, interval time.Duration, maxAttempts int) (State, error) {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		st, err := p.Check(ctx)
		if err != nil {
			return st, err
		}
		if st.Terminal() {
			return st, nil
		}
		if attempt >= maxAttempts {
			return st, domain.ErrPollLimit
		}

		select {
		case <-ctx.Done():
			return st, ctx.Err()
		case <-ticker.C:
		}
	}
}
