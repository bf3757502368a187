package poller

import (
	"context"
	"errors"
	"strconv"
	"time"

	"telebot/internal/echo"
	pkgLog "telebot/pkg/log"
	pkgTelegram "telebot/pkg/telegram"
)

const defaultErrorPause = 3 * time.Second

// Source yields batches of updates.
type Source interface {
	GetUpdates(ctx context.Context, opts pkgTelegram.UpdatesOptions) ([]pkgTelegram.Update, error)
}

// Config controls the long-poll loop.
type Config struct {
	Timeout    time.Duration
	Limit      int
	ErrorPause time.Duration
}

// Poller feeds updates from a Source to a handler, one at a time and in order.
type Poller struct {
	l       pkgLog.Logger
	src     Source
	handler echo.Handler
	cfg     Config
	offset  int64
}

// New creates a new Poller.
func New(l pkgLog.Logger, src Source, handler echo.Handler, cfg Config) *Poller {
	if cfg.ErrorPause <= 0 {
		cfg.ErrorPause = defaultErrorPause
	}
	return &Poller{l: l, src: src, handler: handler, cfg: cfg}
}

// Run polls until ctx is done. It returns nil on a clean shutdown.
func (p *Poller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		updates, err := p.src.GetUpdates(ctx, pkgTelegram.UpdatesOptions{
			Offset:  p.offset,
			Limit:   p.cfg.Limit,
			Timeout: p.cfg.Timeout,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, pkgTelegram.ErrValidation) {
				return err
			}
			p.l.Warnf(ctx, "poller.Run: GetUpdates failed: %v", err)
			if !sleep(ctx, p.pause(err)) {
				return nil
			}
			continue
		}

		for _, u := range updates {
			uctx := pkgLog.WithTraceID(ctx, "update-"+strconv.FormatInt(u.UpdateID, 10))
			if err := p.handler.HandleUpdate(uctx, u); err != nil {
				p.l.Errorf(uctx, "poller.Run: update %d failed: %v", u.UpdateID, err)
			}
			p.offset = u.UpdateID + 1
		}
	}
}

// Offset returns the id of the next update to request.
func (p *Poller) Offset() int64 {
	return p.offset
}

// pause honours a server-advised retry delay when there is one.
func (p *Poller) pause(err error) time.Duration {
	var reqErr *pkgTelegram.RequestError
	if errors.As(err, &reqErr) && reqErr.RetryAfter() > 0 {
		return reqErr.RetryAfter()
	}
	return p.cfg.ErrorPause
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
