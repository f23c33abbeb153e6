package ratelimit

import (
	"context"
	"time"
)

// Policy caps requests per key in a sliding window
type Policy struct {
	Limit  int
	Window time.Duration
}

// Enabled reports whether the policy limits anything
func (p Policy) Enabled() bool {
	return p.Limit > 0 && p.Window > 0
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, policy Policy) (bool, error)
	Reset(ctx context.Context, key string) error
}
