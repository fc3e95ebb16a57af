// File: upstream/client.go
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client is the single chokepoint for all calls to the remote B2B API. It
// enforces a consistent base URL, JSON content negotiation, bearer
// authorization, a fixed timeout ceiling and a uniform error mapping. No
// automatic retry is performed; every method is at most one round trip.
type Client struct {
	base   *url.URL
	client *http.Client
	logger *zap.Logger
}

// New builds a Client for the given base URL. The timeout is a hard ceiling
// per request; callers may impose a tighter one through the context.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base URL %q: %w", baseURL, err)
	}
	return &Client{
		base: base,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: logger,
	}, nil
}

// do executes one JSON round trip. A 2xx body is decoded into out; 401 maps
// to ErrUnauthorized, other non-2xx statuses to *APIError carrying any
// server-supplied message, and transport failures to *NetworkError.
func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, body, out interface{}) error {
	ref := &url.URL{Path: strings.TrimPrefix(path, "/"), RawQuery: query.Encode()}
	endpoint := c.base.ResolveReference(ref).String()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		nerr := &NetworkError{Err: err}
		var uerr *url.Error
		if errors.As(err, &uerr) && uerr.Timeout() {
			nerr.Timeout = true
		}
		if errors.Is(err, context.DeadlineExceeded) {
			nerr.Timeout = true
		}
		c.logger.Warn("upstream request failed",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nerr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: extractMessage(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &Rejection{Message: fmt.Sprintf("malformed response from %s: %v", path, err)}
		}
	}
	return nil
}

// extractMessage pulls a server-supplied message out of an error body.
func extractMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
