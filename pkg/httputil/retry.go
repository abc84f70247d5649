package httputil

import (
	"context"
	"errors"
	"time"
)

// Defaults used by [RetryWithBackoff]. Dataset fetches are small TOML
// payloads, so a short ladder (1s, 2s) is enough to ride out a blip
// without making the CLI feel hung.
const (
	defaultAttempts = 3
	defaultDelay    = time.Second
	maxDelay        = 30 * time.Second
)

// RetryableError marks an error as transient. Wrap network failures and
// 5xx responses with it so [Retry] tries again; anything else (a 404
// dataset, malformed TOML) fails fast.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry runs fn up to attempts times, doubling delay after each transient
// failure up to a 30 second ceiling. Permanent errors return immediately.
// If the context is cancelled while waiting, ctx.Err() is returned.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	var lastErr error
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !errors.As(err, new(*RetryableError)) {
			return err
		}
		lastErr = err

		if attempt >= max(attempts, 1) {
			return lastErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = min(delay*2, maxDelay)
	}
}

// RetryWithBackoff runs fn with the package defaults. It covers the common
// case of fetching a published dataset over HTTP.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, defaultAttempts, defaultDelay, fn)
}
