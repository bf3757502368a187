package telegram

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	maxThrottledChats = 1000
	chatLimiterTTL    = 5 * time.Minute
)

// throttle paces outbound calls globally and per chat. A nil throttle never waits.
type throttle struct {
	global *rate.Limiter

	mu        sync.Mutex
	chats     *expirable.LRU[string, *rate.Limiter]
	chatRate  rate.Limit
	chatBurst int
}

func newThrottle(cfg RateLimitConfig) *throttle {
	if cfg.PerSecond <= 0 && cfg.PerChatPerMinute <= 0 {
		return nil
	}

	t := &throttle{}
	if cfg.PerSecond > 0 {
		t.global = rate.NewLimiter(rate.Limit(cfg.PerSecond), max(1, int(cfg.PerSecond)))
	}
	if cfg.PerChatPerMinute > 0 {
		t.chats = expirable.NewLRU[string, *rate.Limiter](maxThrottledChats, nil, chatLimiterTTL)
		t.chatRate = rate.Limit(float64(cfg.PerChatPerMinute) / 60.0)
		t.chatBurst = max(1, cfg.PerChatPerMinute/10)
	}
	return t
}

// Wait blocks until both the global and the chat's limiter admit a call or ctx ends.
func (t *throttle) Wait(ctx context.Context, chatID string) error {
	if t == nil {
		return nil
	}
	if t.global != nil {
		if err := t.global.Wait(ctx); err != nil {
			return err
		}
	}
	if t.chats == nil || chatID == "" {
		return nil
	}
	return t.chatLimiter(chatID).Wait(ctx)
}

func (t *throttle) chatLimiter(chatID string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	limiter, ok := t.chats.Get(chatID)
	if !ok {
		limiter = rate.NewLimiter(t.chatRate, t.chatBurst)
		t.chats.Add(chatID, limiter)
	}
	return limiter
}
