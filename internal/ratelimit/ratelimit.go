package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter paces outgoing requests. It exists mainly for paged searches,
// which can issue up to a hundred requests for a single query.
type Limiter struct {
	limiter *rate.Limiter
}

// New uses 0 or a negative limit for no rate limiting.
func New(requestsPerSecond float64) *Limiter {
	if requestsPerSecond <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}

	// Burst of 1: the first request goes out immediately, the rest wait.
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1)}
}

// Wait blocks until the next request is allowed or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Limit reports the configured requests per second, 0 meaning unlimited.
func (l *Limiter) Limit() float64 {
	limit := l.limiter.Limit()
	if limit == rate.Inf {
		return 0
	}
	return float64(limit)
}
