package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/matzehuels/toolradar/pkg/errors"
	"github.com/matzehuels/toolradar/pkg/httputil"
)

// maxRemoteSize bounds remote dataset downloads. Datasets are tens of
// entries; anything past this is not a dataset.
const maxRemoteSize = 1 << 20 // 1 MiB

// fetchTimeout bounds a single remote dataset request.
const fetchTimeout = 15 * time.Second

// Fetch downloads and parses a TOML dataset from an HTTP(S) URL.
// Transient failures (network errors, 5xx responses) are retried with
// exponential backoff.
func Fetch(ctx context.Context, url string) (*Dataset, error) {
	if err := errors.ValidateURL(url); err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: fetchTimeout}

	var body []byte
	err := httputil.RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := client.Do(req)
		if err != nil {
			return &httputil.RetryableError{Err: err}
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			// fall through to read
		case resp.StatusCode >= 500:
			return &httputil.RetryableError{Err: fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)}
		case resp.StatusCode == http.StatusNotFound:
			return errors.New(errors.ErrCodeDatasetNotFound, "dataset not found at %s", url)
		default:
			return errors.New(errors.ErrCodeNetwork, "fetch %s: status %d", url, resp.StatusCode)
		}

		body, err = io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize+1))
		if err != nil {
			return &httputil.RetryableError{Err: err}
		}
		if len(body) > maxRemoteSize {
			return errors.New(errors.ErrCodeInvalidDataset, "dataset at %s exceeds %d bytes", url, maxRemoteSize)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return Parse(body)
}
