package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pongtrack/startuppong/pkg/errors"
	"github.com/pongtrack/startuppong/pkg/observability"
)

const httpTimeout = 10 * time.Second

// Client provides shared HTTP functionality for API calls.
// It performs blocking requests, buffers response bodies in full, and maps
// every failure to a distinct error code. It does not retry, cache, or
// stream.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewHTTPClient creates an HTTP client with a standard timeout for API requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// NewClient creates a Client using the given HTTP client and default headers.
// Headers are applied to all requests made through this client.
// Pass nil for httpClient to use a default client with a 10 second timeout;
// tests pass an httptest server's client instead of touching the network.
// Pass nil for headers if no default headers are needed.
func NewClient(httpClient *http.Client, headers map[string]string) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient()
	}
	return &Client{
		http:    httpClient,
		headers: headers,
	}
}

// GetJSON performs a blocking HTTP GET, reads the entire response body, and
// JSON-decodes it into v.
//
// Failure modes map to distinct error codes:
//   - [errors.ErrCodeNetwork]: the request could not be completed
//   - [errors.ErrCodeStatus]: the remote answered with a non-2xx status
//   - [errors.ErrCodeIO]: the body could not be fully read
//   - [errors.ErrCodeDecode]: the body was not valid JSON or did not match v
func (c *Client) GetJSON(ctx context.Context, rawURL string, v any) error {
	data, err := c.do(ctx, http.MethodGet, rawURL, "", nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(errors.ErrCodeDecode, err, "decode response")
	}
	return nil
}

// PostForm performs a blocking form-urlencoded HTTP POST. The Content-Type
// header is set explicitly. The response body is drained and discarded; a
// non-2xx status is reported as [errors.ErrCodeStatus].
func (c *Client) PostForm(ctx context.Context, rawURL string, form url.Values) error {
	_, err := c.do(ctx, http.MethodPost, rawURL, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	return err
}

// do issues the request and returns the buffered body. Error messages name
// only the host and path, never the full URL: credentials travel in the
// query string and must not leak into logs.
func (c *Client) do(ctx context.Context, method, rawURL, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "build %s request", method)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	host, path := req.URL.Host, req.URL.Path
	start := time.Now()
	observability.HTTP().OnRequest(ctx, reqID, method, host, path)

	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, reqID, method, host, path, err)
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "%s %s%s", method, host, path)
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, reqID, method, host, path, resp.StatusCode, time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read response body from %s%s", host, path)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.New(errors.ErrCodeStatus, "%s %s%s: status %d", method, host, path, resp.StatusCode)
	}
	return data, nil
}
