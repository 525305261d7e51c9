package llm

import (
	"context"
	"log/slog"
	"time"
)

// RetryProvider is a decorator that bounds each attempt with a timeout and
// retries retryable failures with capped exponential backoff. Attempts are
// strictly sequential.
type RetryProvider struct {
	inner       Provider
	maxAttempts int
	timeout     time.Duration
	backoff     BackoffConfig
	logger      *slog.Logger

	// sleep waits between attempts; replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// WithRetry wraps a Provider with the retry policy from cfg.
func WithRetry(p Provider, cfg Config, logger *slog.Logger) *RetryProvider {
	if logger == nil {
		logger = slog.Default()
	}
	attempts := cfg.MaxRetries
	if attempts < 1 {
		attempts = 1
	}
	return &RetryProvider{
		inner:       p,
		maxAttempts: attempts,
		timeout:     cfg.Timeout,
		backoff:     cfg.Backoff,
		logger:      logger,
		sleep:       sleepContext,
	}
}

func (r *RetryProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	var lastErr *Error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		resp, err := r.attempt(ctx, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
		lastErr.Attempts = attempt
		lastErr.Elapsed = time.Since(start)

		if !lastErr.Kind.Retryable() || attempt == r.maxAttempts {
			return nil, lastErr
		}

		wait := r.backoff.Delay(attempt)
		r.logger.WarnContext(ctx, "retrying ai request",
			"operation", OperationFrom(ctx),
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"error_kind", lastErr.Kind.String(),
			"delay", wait,
		)
		if err := r.sleep(ctx, wait); err != nil {
			e := transportError(err)
			e.Attempts = attempt
			e.Elapsed = time.Since(start)
			return nil, e
		}
	}

	return nil, lastErr
}

// attempt runs one call under its own deadline. A deadline hit by the
// attempt itself is a Timeout; cancellation of the caller's context is not
// retried.
func (r *RetryProvider) attempt(ctx context.Context, req Request) (*Response, *Error) {
	if err := ctx.Err(); err != nil {
		return nil, transportError(err)
	}

	attemptCtx := ctx
	cancel := func() {}
	if r.timeout > 0 {
		attemptCtx, cancel = context.WithTimeout(ctx, r.timeout)
	}
	defer cancel()

	resp, err := r.inner.Complete(attemptCtx, req)
	if err == nil {
		return resp, nil
	}

	if parentErr := ctx.Err(); parentErr != nil {
		return nil, &Error{Kind: KindCanceled, Err: err}
	}
	if attemptCtx.Err() == context.DeadlineExceeded {
		e := asError(err)
		e.Kind = KindTimeout
		return nil, e
	}
	return nil, asError(err)
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
