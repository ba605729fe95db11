package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Config holds the configuration for exponential backoff retry logic.
type Config struct {
	// MaxRetries is the maximum number of retry attempts.
	// Set to -1 for unlimited retries.
	MaxRetries int

	// InitialBackoff is the duration to wait before the first retry.
	InitialBackoff time.Duration

	// MaxBackoff is the maximum duration to wait between retries.
	MaxBackoff time.Duration

	// Multiplier is the factor by which the backoff duration increases after each retry.
	Multiplier float64

	// Jitter adds randomness to backoff duration to prevent thundering herd.
	Jitter bool
}

// Operation is a function that will be retried until it returns nil.
type Operation func(ctx context.Context) error

// WithExponentialBackoff executes the given operation with exponential backoff retry logic.
// It returns an error if all retries are exhausted or if the context is canceled.
func WithExponentialBackoff(ctx context.Context, cfg Config, op Operation) error {
	var attempt int
	var err error

	for {
		attempt++

		err = op(ctx)
		if err == nil {
			return nil
		}

		if cfg.MaxRetries >= 0 && attempt > cfg.MaxRetries {
			return fmt.Errorf("operation failed after %d attempts: %w", attempt, err)
		}

		backoff := calculateBackoff(attempt, cfg)

		select {
		case <-ctx.Done():
			return fmt.Errorf("operation canceled after %d attempts: %w", attempt, ctx.Err())
		case <-time.After(backoff):
		}
	}
}

// calculateBackoff returns initialBackoff * multiplier^(retryNumber-1),
// capped at MaxBackoff, with optional ±25% jitter.
func calculateBackoff(retryNumber int, cfg Config) time.Duration {
	if retryNumber == 0 {
		return 0
	}

	backoff := float64(cfg.InitialBackoff) * math.Pow(cfg.Multiplier, float64(retryNumber-1))
	if backoff > float64(cfg.MaxBackoff) {
		backoff = float64(cfg.MaxBackoff)
	}

	duration := time.Duration(backoff)

	if cfg.Jitter {
		jitterRange := float64(duration) * 0.25
		jitterAmount := (rand.Float64() * 2 * jitterRange) - jitterRange
		duration = time.Duration(float64(duration) + jitterAmount)

		if duration > cfg.MaxBackoff {
			duration = cfg.MaxBackoff
		}
		if duration < 0 {
			duration = 0
		}
	}

	return duration
}
