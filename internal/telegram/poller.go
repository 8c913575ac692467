package telegram

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

const pollTimeout = 10 * time.Second

type UpdateSource interface {
	GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error)
}

type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update Update)
}

// Poller pulls updates with getUpdates and hands them to the handler one at a
// time, in update_id order.
type Poller struct {
	source   UpdateSource
	handler  UpdateHandler
	logger   zerolog.Logger
	interval time.Duration
	offset   int64
}

func NewPoller(source UpdateSource, handler UpdateHandler, logger zerolog.Logger, interval time.Duration) *Poller {
	if interval < 0 {
		interval = 0
	}
	return &Poller{
		source:   source,
		handler:  handler,
		logger:   logger,
		interval: interval,
	}
}

// Run polls until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info().Dur("interval", p.interval).Msg("polling for updates")
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		if _, err := p.PollOnce(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				if ctx.Err() != nil {
					return nil
				}
			}
			p.logger.Error().Err(err).Msg("get updates failed")
		}

		if !sleepCtx(ctx, p.interval) {
			return nil
		}
	}
}

// PollOnce fetches one batch and processes it. It returns the number of
// updates handled.
func (p *Poller) PollOnce(ctx context.Context) (int, error) {
	updates, err := p.source.GetUpdates(ctx, p.offset, pollTimeout)
	if err != nil {
		return 0, err
	}

	for _, u := range updates {
		if u.UpdateID >= p.offset {
			p.offset = u.UpdateID + 1
		}
		p.handler.HandleUpdate(ctx, u)
	}
	return len(updates), nil
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
