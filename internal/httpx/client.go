// Package httpx wraps the HTTP client used for outbound calls with a bounded
// retry policy for transient failures.
package httpx

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Client retries requests that fail with a network error or a 5xx status.
// Retries use exponential backoff with light jitter and a hard attempt
// ceiling; a request that exceeds the client timeout counts as a failed
// attempt, it is not retried indefinitely.
type Client struct {
	http        *http.Client
	maxAttempts int
	baseBackoff time.Duration
}

func New(timeout time.Duration, maxAttempts int) *Client {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &Client{
		http:        &http.Client{Timeout: timeout},
		maxAttempts: maxAttempts,
		baseBackoff: 100 * time.Millisecond,
	}
}

// Do executes the request, retrying on transient failure. The request body,
// if any, must be rewindable; callers pass the raw bytes so each attempt gets
// a fresh reader.
func (c *Client) Do(req *http.Request, body []byte) (*http.Response, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
		}

		resp, err := c.http.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("server returned %s", resp.Status)
			resp.Body.Close()
		}

		if attempt == c.maxAttempts {
			break
		}

		if req.Context().Err() != nil {
			return nil, req.Context().Err()
		}

		wait := c.backoff(attempt)
		logrus.Warnf("Request to %s failed (attempt %d/%d): %v, retrying in %v",
			req.URL.Host, attempt, c.maxAttempts, lastErr, wait)
		time.Sleep(wait)
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", c.maxAttempts, lastErr)
}

func (c *Client) backoff(attempt int) time.Duration {
	wait := c.baseBackoff * time.Duration(1<<uint(attempt-1))
	jitter := time.Duration(rand.Int63n(int64(c.baseBackoff)))
	return wait + jitter
}
