package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle bounds login submissions per source address, independently of
// the per-account lockout. Counters live in Redis with a sliding window key:
// throttle:login:<ip>.
type LoginThrottle struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewLoginThrottle creates a throttle allowing limit attempts per window.
func NewLoginThrottle(client *redis.Client, limit int, window time.Duration) *LoginThrottle {
	if limit <= 0 {
		limit = 30
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginThrottle{client: client, limit: int64(limit), window: window}
}

// Allow increments the caller's counter and reports whether the attempt is
// within the window limit.
func (t *LoginThrottle) Allow(ctx context.Context, remoteIP string) (bool, error) {
	key := t.key(remoteIP)

	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			return false, fmt.Errorf("throttle expire: %w", err)
		}
	}
	return n <= t.limit, nil
}

func (t *LoginThrottle) key(remoteIP string) string {
	return fmt.Sprintf("throttle:login:%s", remoteIP)
}
