// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for the remote conversion client.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// NewClient returns an HTTP client with the given timeout. A zero timeout
// leaves the client unbounded; the request context still applies.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Do executes req once under ctx, reads the whole body and closes it.
// Non-2xx statuses are not errors; callers inspect StatusCode. There is no
// retry.
func Do(ctx context.Context, client *http.Client, req *http.Request) (*Response, error) {
	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
