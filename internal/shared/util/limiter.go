package util

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter caps how often watch mode re-runs the search after bursts of
// filesystem events.
type Limiter struct {
	inner *rate.Limiter
}

// NewLimiter creates a token bucket limiter.
// r: runs per second.
// b: burst size.
func NewLimiter(r float64, b int) *Limiter {
	return &Limiter{
		inner: rate.NewLimiter(rate.Limit(r), b),
	}
}

// Wait blocks until the next run is allowed or the context is cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.inner.Wait(ctx)
}
