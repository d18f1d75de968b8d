package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryProvider decorates a Provider with exponential backoff and
// jitter for transient failures.
type retryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, config: cfg}
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	// A malformed response gets exactly one retry per Generate call;
	// the model is unlikely to fix itself on further attempts.
	invalidBudget := 1

	var lastErr error
	for attempt := range r.config.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err, &invalidBudget) || attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.waitFor(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *retryProvider) ModelID() string {
	return r.inner.ModelID()
}

// retryable classifies an error. Context errors and token-limit errors
// are permanent; an invalid response consumes the caller's budget;
// everything else (rate limits, 5xx, network) is transient.
func retryable(err error, invalidBudget *int) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}

	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		if *invalidBudget == 0 {
			return false
		}
		*invalidBudget--
		return true
	}

	return true
}

// waitFor computes the sleep before the next attempt. A server-provided
// Retry-After wins over the backoff curve, capped at MaxWait either way.
func (r *retryProvider) waitFor(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return min(rl.RetryAfter, r.config.MaxWait)
	}

	wait := time.Duration(float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt)))
	if wait > r.config.MaxWait {
		wait = r.config.MaxWait
	}
	if wait <= 0 {
		return 0
	}

	// Full jitter over the upper half of the window.
	half := wait / 2
	return half + rand.N(half+1)
}
