package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jobboard/jobboard-api/internal/domain"
)

// CounterStore is the expiring counter backend used for login throttling.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	Count(ctx context.Context, key string) (int64, error)
	Del(ctx context.Context, keys ...string) error
}

// LoginThrottle limits failed logins per identity within a window. Store
// failures are logged and treated as allowed.
type LoginThrottle struct {
	store       CounterStore
	maxAttempts int64
	window      time.Duration
	logger      *zap.Logger
}

// NewLoginThrottle builds a throttle. A nil store or non-positive limit disables it.
func NewLoginThrottle(store CounterStore, maxAttempts int, window time.Duration, logger *zap.Logger) *LoginThrottle {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoginThrottle{store: store, maxAttempts: int64(maxAttempts), window: window, logger: logger}
}

func (t *LoginThrottle) enabled() bool {
	return t != nil && t.store != nil && t.maxAttempts > 0
}

// Allowed reports whether another attempt may be made.
func (t *LoginThrottle) Allowed(ctx context.Context, subject domain.SubjectType, id string) bool {
	if !t.enabled() {
		return true
	}
	count, err := t.store.Count(ctx, throttleKey(subject, id))
	if err != nil {
		t.logger.Warn("login throttle unavailable", zap.Error(err))
		return true
	}
	return count < t.maxAttempts
}

// Fail records a failed attempt.
func (t *LoginThrottle) Fail(ctx context.Context, subject domain.SubjectType, id string) {
	if !t.enabled() {
		return
	}
	if _, err := t.store.Incr(ctx, throttleKey(subject, id), t.window); err != nil {
		t.logger.Warn("login throttle unavailable", zap.Error(err))
	}
}

// Reset clears the failure count after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, subject domain.SubjectType, id string) {
	if !t.enabled() {
		return
	}
	if err := t.store.Del(ctx, throttleKey(subject, id)); err != nil {
		t.logger.Warn("login throttle unavailable", zap.Error(err))
	}
}

func throttleKey(subject domain.SubjectType, id string) string {
	return "login:fail:" + string(subject) + ":" + id
}
