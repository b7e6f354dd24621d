// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultUserAgent is sent when a stage has no configured User-Agent.
// Scholar serves an interstitial page to clients that do not look like
// a browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// DefaultTimeout is the per-request timeout used when none is configured.
const DefaultTimeout = 10 * time.Second

// RateLimitedError reports an HTTP 429 from a remote service. Requests
// are never retried automatically; the operator raises the
// inter-request delay instead.
type RateLimitedError struct {
	URL string
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited by %s (consider increasing --delay)", e.URL)
}

// Do executes the request with the given client. An HTTP 429 response
// is drained, closed, and surfaced as *RateLimitedError; any other
// response is returned as-is for the caller to inspect.
func Do(ctx context.Context, client *http.Client, req *http.Request) (*http.Response, error) {
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req.Clone(ctx))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &RateLimitedError{URL: req.URL.String()}
	}

	return resp, nil
}

// NewClient returns an HTTP client with the given timeout, falling
// back to DefaultTimeout when zero.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
