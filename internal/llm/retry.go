package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider is a decorator that retries transient errors with
// exponential backoff and jitter.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	return retry(ctx, r.config, func() (*Response, error) {
		return r.inner.Generate(ctx, req)
	})
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// RetrySpeaker applies the same retry policy to speech requests.
type RetrySpeaker struct {
	inner  Speaker
	config RetryConfig
}

// WithSpeechRetry wraps a Speaker with retry logic.
func WithSpeechRetry(s Speaker, cfg RetryConfig) Speaker {
	return &RetrySpeaker{inner: s, config: cfg}
}

func (r *RetrySpeaker) Speak(ctx context.Context, req SpeechRequest) (*SpeechResponse, error) {
	return retry(ctx, r.config, func() (*SpeechResponse, error) {
		return r.inner.Speak(ctx, req)
	})
}

func (r *RetrySpeaker) ModelID() string {
	return r.inner.ModelID()
}

func retry[T any](ctx context.Context, cfg RetryConfig, call func() (T, error)) (T, error) {
	var zero T
	var lastErr error
	invalidRetried := false

	attempts := max(cfg.MaxAttempts, 1)
	for attempt := range attempts {
		resp, err := call()
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !shouldRetry(err, &invalidRetried) {
			return zero, err
		}

		// Last attempt: return without sleeping.
		if attempt == attempts-1 {
			break
		}

		wait := backoff(cfg, attempt, err)
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait):
		}
	}

	return zero, lastErr
}

// shouldRetry reports whether err is worth another attempt. A response
// that fails validation is retried once; rate limits and outages always.
func shouldRetry(err error, invalidRetried *bool) bool {
	if Permanent(err) {
		return false
	}

	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
	}
	return true
}

// backoff computes the wait duration for the given attempt.
func backoff(cfg RetryConfig, attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(cfg.InitialWait) * math.Pow(cfg.Multiplier, float64(attempt))
	if wait > float64(cfg.MaxWait) {
		wait = float64(cfg.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
