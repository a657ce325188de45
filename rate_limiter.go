package enterprise

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// rateLimiter delays requests so they leave at no more than the configured
// rate. It never rejects or retries; a nil *rateLimiter lets everything through.
type rateLimiter struct {
	limiter *rate.Limiter
	metrics *MetricsCollector
}

func newRateLimiter(limit rate.Limit, burst int, metrics *MetricsCollector) *rateLimiter {
	return &rateLimiter{
		limiter: rate.NewLimiter(limit, burst),
		metrics: metrics,
	}
}

// wait blocks until a token is available or ctx is done.
func (rl *rateLimiter) wait(ctx context.Context) error {
	if rl == nil {
		return nil
	}

	start := time.Now()
	err := rl.limiter.Wait(ctx)
	rl.metrics.RecordRateLimitWait(time.Since(start))
	if err == nil {
		return nil
	}

	// Wait fails early, without a context error, when the deadline cannot
	// be met. Report that as a rate limit refusal rather than a timeout.
	if ctx.Err() != nil {
		return transportError(ctx, ctx.Err(), "waiting for rate limiter")
	}
	return &Error{
		Kind:    KindTransport,
		Code:    CodeRateLimit,
		Message: "rate limit wait would exceed the request deadline",
		Cause:   err,
	}
}
