package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc is called after a failed attempt that will be retried after wait.
type NotifyFunc func(err error, wait time.Duration)

// Config describes an exponential backoff. A nil ShouldRetry retries every error and a
// zero MaxAttempts leaves MaxElapsedTime as the only bound.
type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64
	MaxAttempts     uint64

	ShouldRetry ShouldRetryFunc
	OnRetry     NotifyFunc
}

// ConnectConfig is the policy used when waiting for infrastructure (database, broker,
// preparation service) to come up at startup.
func ConnectConfig(initial time.Duration) Config {
	return Config{
		InitialInterval: initial,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}
