package service

import (
	"context"
	"errors"
	"time"

	"shift-scheduler/internal/cache"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle counts failed logins per email in Redis and blocks the
// email once the count reaches max within window.
type LoginThrottle struct {
	cache  cache.Cache
	max    int
	window time.Duration
}

func NewLoginThrottle(c cache.Cache, max int, window time.Duration) *LoginThrottle {
	return &LoginThrottle{cache: c, max: max, window: window}
}

func (t *LoginThrottle) key(email string) string {
	return "login:fail:" + email
}

// Allow reports whether email may attempt another login. A blocked counter
// that lost its expiry is given a fresh window so it cannot block forever.
func (t *LoginThrottle) Allow(ctx context.Context, email string) (bool, error) {
	key := t.key(email)
	n, err := t.cache.Get(ctx, key).Int()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return true, err
	}
	if n < t.max {
		return true, nil
	}
	if err := t.ensureExpiry(ctx, key); err != nil {
		return true, err
	}
	return false, nil
}

// Fail records one failed attempt. The window starts at the first failure;
// later failures re-arm it if the first Expire never landed.
func (t *LoginThrottle) Fail(ctx context.Context, email string) error {
	key := t.key(email)
	n, err := t.cache.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if n == 1 {
		return t.cache.Expire(ctx, key, t.window).Err()
	}
	return t.ensureExpiry(ctx, key)
}

// ensureExpiry 若 key 沒有 TTL（-1）則補設 window
func (t *LoginThrottle) ensureExpiry(ctx context.Context, key string) error {
	ttl, err := t.cache.TTL(ctx, key).Result()
	if err != nil {
		return err
	}
	if ttl >= 0 {
		return nil
	}
	return t.cache.Expire(ctx, key, t.window).Err()
}

func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	return t.cache.Del(ctx, t.key(email)).Err()
}
