// Package httputil provides HTTP utilities for remote dataset fetching.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//
// It uses exponential backoff, doubling the delay after each failed
// attempt. Only errors wrapped in [RetryableError] are retried; permanent
// failures (4xx responses, malformed datasets) return immediately.
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    ...
//	})
//
// # Configuration
//
// Default settings are suitable for dataset-sized payloads:
//
//   - Max retries: 3
//   - Base backoff: 1 second
package httputil
