package llm

import (
	"context"
	"math"

	"golang.org/x/time/rate"
)

// RateLimitProvider is a decorator that spaces outbound attempts so the
// upstream quota is not exhausted by a burst of retries.
type RateLimitProvider struct {
	inner   Provider
	limiter *rate.Limiter
}

// WithRateLimit wraps p with a token bucket allowing rps attempts per
// second. A non-positive rps returns p unchanged.
func WithRateLimit(p Provider, rps float64) Provider {
	if rps <= 0 {
		return p
	}
	burst := int(math.Max(1, math.Ceil(rps)))
	return &RateLimitProvider{
		inner:   p,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, transportError(ctx.Err())
		}
		// Wait fails without a context error when the deadline is too close
		// to ever obtain a token.
		return nil, &Error{Kind: KindTimeout, Err: err}
	}
	return r.inner.Complete(ctx, req)
}

func (r *RateLimitProvider) ModelID() string {
	return r.inner.ModelID()
}
