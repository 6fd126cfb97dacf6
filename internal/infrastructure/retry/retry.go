// Package retry implements bounded retries with exponential backoff and
// jitter, used for calls to upstream flight providers.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Config describes a retry policy.
type Config struct {
	// MaxAttempts bounds the total number of calls, including the first.
	// Values below 1 are treated as a single attempt.
	MaxAttempts int

	// InitialDelay is the backoff before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the backoff between attempts.
	MaxDelay time.Duration

	// Multiplier grows the backoff after every retry.
	Multiplier float64

	// JitterFactor adds up to this fraction of the current backoff as
	// random jitter, spreading out retries from concurrent callers.
	JitterFactor float64

	// RetryIf decides whether an error is worth retrying.
	// A nil predicate retries every error.
	RetryIf func(error) bool
}

// ProviderConfig is the policy for upstream provider calls: three attempts
// with a generous cap, so a transient upstream hiccup does not surface as a
// failed search.
var ProviderConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// WithRetryIf returns a copy of the config with the given predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// WithMaxAttempts returns a copy of the config with the given attempt bound.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

// WithInitialDelay returns a copy of the config with the given initial delay.
func (c Config) WithInitialDelay(d time.Duration) Config {
	c.InitialDelay = d
	return c
}

// WithMaxDelay returns a copy of the config with the given delay cap.
func (c Config) WithMaxDelay(d time.Duration) Config {
	c.MaxDelay = d
	return c
}

// Do runs fn under the policy and returns the last error once the attempts
// are exhausted, or nil as soon as a call succeeds.
func Do(ctx context.Context, fn func() error, cfg Config) error {
	_, err := DoWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, cfg)
	return err
}

// DoWithResult runs fn under the policy and returns its result. On failure
// the zero value is returned together with the last error; context errors
// take precedence and end the loop immediately.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	var zero T

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	delay := cfg.InitialDelay
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(jittered(delay, cfg.MaxDelay, cfg.JitterFactor)):
			}
			delay = time.Duration(float64(delay) * cfg.Multiplier)
		}

		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if cfg.RetryIf != nil && !cfg.RetryIf(err) {
			return zero, err
		}
	}

	return zero, lastErr
}

// jittered returns the backoff for the current attempt: the base delay plus
// random jitter, capped at max.
func jittered(delay, max time.Duration, factor float64) time.Duration {
	d := delay + time.Duration(rand.Float64()*factor*float64(delay))
	if max > 0 && d > max {
		d = max
	}
	return d
}

// Permanent marks an error as not worth retrying, such as a rejected
// request or invalid credentials.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent wraps err so SkipPermanent stops retrying it.
// A nil err stays nil.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent reports whether err carries a Permanent marker anywhere in
// its chain.
func IsPermanent(err error) bool {
	var permanent *Permanent
	return errors.As(err, &permanent)
}

// SkipPermanent is a RetryIf predicate that retries everything except
// permanent errors.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}
