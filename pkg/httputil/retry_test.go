package httputil

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRetryStopsOnPermanentError(t *testing.T) {
	calls := 0
	permanent := errors.New("permanent")

	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return permanent
	})

	if !errors.Is(err, permanent) {
		t.Errorf("err = %v, want %v", err, permanent)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (permanent errors are not retried)", calls)
	}
}

func TestRetryRetriesTransientError(t *testing.T) {
	calls := 0

	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return &RetryableError{Err: errors.New("transient")}
		}
		return nil
	})

	if err != nil {
		t.Errorf("err = %v, want nil", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	transient := errors.New("still down")

	err := Retry(context.Background(), 2, time.Millisecond, func() error {
		calls++
		return &RetryableError{Err: transient}
	})

	if !errors.Is(err, transient) {
		t.Errorf("err = %v, want %v", err, transient)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestRetryRecoversFromServerBlip(t *testing.T) {
	// A dataset fetch that hits two 503s and then succeeds, the failure
	// shape RetryWithBackoff exists for.
	statuses := []int{503, 502, 200}
	calls := 0

	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		status := statuses[calls]
		calls++
		if status >= 500 {
			return &RetryableError{Err: fmt.Errorf("fetch tools.toml: status %d", status)}
		}
		return nil
	})

	if err != nil {
		t.Errorf("err = %v, want nil after recovery", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetryableErrorUnwraps(t *testing.T) {
	inner := errors.New("connection reset")
	wrapped := &RetryableError{Err: inner}

	if !errors.Is(wrapped, inner) {
		t.Error("RetryableError should unwrap to the inner error")
	}
	if wrapped.Error() != inner.Error() {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), inner.Error())
	}
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, 3, time.Hour, func() error {
		return &RetryableError{Err: errors.New("transient")}
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
