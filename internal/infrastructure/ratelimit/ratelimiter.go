// Package ratelimit throttles requests per client key over sliding windows.
package ratelimit

import (
	"context"
	"time"
)

// Limits caps requests per window. A zero limit disables that window.
type Limits struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limits Limits) (bool, error)
	GetCount(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}

// NoopRateLimiter allows everything. It stands in when redis is disabled.
type NoopRateLimiter struct{}

func (NoopRateLimiter) Allow(context.Context, string, Limits) (bool, error) { return true, nil }

func (NoopRateLimiter) GetCount(context.Context, string, time.Duration) (int64, error) {
	return 0, nil
}

func (NoopRateLimiter) Reset(context.Context, string) error { return nil }
