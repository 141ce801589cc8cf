package flightdata

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"
)

// RetryConfig configures retry behavior with exponential backoff.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts (default: 3)
	MaxRetries int

	// InitialDelay is the initial backoff delay (default: 1 second)
	InitialDelay time.Duration

	// MaxDelay caps the backoff delay (default: 60 seconds)
	MaxDelay time.Duration

	// Multiplier is the backoff multiplier (default: 2.0)
	Multiplier float64

	// RespectRetryAfter uses the Retry-After header when present
	RespectRetryAfter bool
}

// DefaultRetryConfig returns sensible defaults for retry behavior.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:        3,
		InitialDelay:      time.Second,
		MaxDelay:          60 * time.Second,
		Multiplier:        2.0,
		RespectRetryAfter: true,
	}
}

// RetryWithBackoff executes fn with exponential backoff. Rate limit
// errors (HTTP 429) are handled specially: when the server supplied a
// Retry-After, that delay wins over the computed backoff.
func RetryWithBackoff(ctx context.Context, cfg RetryConfig, fn func() error) error {
	_, err := RetryWithBackoffResult(ctx, cfg, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// RetryWithBackoffResult is RetryWithBackoff for functions returning a
// value along with the error.
//
// Example:
//
//	flights, err := RetryWithBackoffResult(ctx, DefaultRetryConfig(), func() ([]Flight, error) {
//	    return client.Flights(ctx)
//	})
func RetryWithBackoffResult[T any](ctx context.Context, cfg RetryConfig, fn func() (T, error)) (T, error) {
	var result T
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return result, fmt.Errorf("retry cancelled: %w", ctx.Err())
			case <-time.After(delay):
			}
		}

		res, err := fn()
		if err == nil {
			return res, nil
		}

		result = res
		lastErr = err

		if attempt == cfg.MaxRetries {
			break
		}

		// Exponential backoff: delay = InitialDelay * Multiplier^attempt
		next := time.Duration(float64(cfg.InitialDelay) * math.Pow(cfg.Multiplier, float64(attempt)))
		if next > cfg.MaxDelay {
			next = cfg.MaxDelay
		}
		delay = next

		if rle, ok := IsRateLimitError(err); ok {
			if cfg.RespectRetryAfter && rle.RetryAfter > 0 {
				delay = rle.RetryAfter
			}
			if rle.Headers.Remaining >= 0 {
				log.Printf("Rate limit hit: %d/%d requests remaining, reset at %v",
					rle.Headers.Remaining, rle.Headers.Limit, rle.Headers.Reset)
			}
		}
	}

	return result, fmt.Errorf("max retries (%d) exceeded: %w", cfg.MaxRetries, lastErr)
}
