// Package apiclient talks to a running hotline server over its HTTP API and
// realtime websocket.
package apiclient

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

	"github.com/renato0307/hotline/internal/adapters/httpapi"
	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/services"
)

const defaultTimeout = 30 * time.Second

// Client is a thin typed wrapper over the hotline HTTP API
type Client struct {
	base *url.URL
	h    *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.h = h
	}
}

// New creates a client for the server at baseURL, e.g. http://localhost:3001
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: server url: %v", domain.ErrInvalidField, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: server url must be http or https: %q", domain.ErrInvalidField, baseURL)
	}

	c := &Client{
		base: u,
		h:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the server address
func (c *Client) BaseURL() string {
	return c.base.String()
}

func (c *Client) url(path string, query url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// StatusError is returned for any non 2xx response
type StatusError struct {
	Code    int
	Message string
	Files   []services.UploadResult
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Code)
	}
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
}

// Unwrap maps status codes back onto domain errors so callers can use
// errors.Is the same way they would against the services directly.
func (e *StatusError) Unwrap() error {
	switch e.Code {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest:
		if e.Message == "unknown hook type" {
			return domain.ErrUnknownHookType
		}
		return domain.ErrInvalidField
	default:
		return nil
	}
}

func jsonBody(v any) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// send performs the request and returns the response for 2xx statuses.
// Anything else is drained into a StatusError.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	if req.Body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	rsp, err := c.h.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	if rsp.StatusCode >= 200 && rsp.StatusCode < 300 {
		return rsp, nil
	}
	defer rsp.Body.Close()
	return nil, readStatusError(rsp)
}

func readStatusError(rsp *http.Response) error {
	statusErr := &StatusError{Code: rsp.StatusCode}
	var body httpapi.Error
	if err := json.NewDecoder(io.LimitReader(rsp.Body, 1<<20)).Decode(&body); err == nil {
		statusErr.Message = body.Error
		statusErr.Files = body.Files
	}
	return statusErr
}

// do sends a JSON request and decodes the JSON response into out when non nil
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		var err error
		if body, err = jsonBody(in); err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	rsp, err := c.send(req)
	if err != nil {
		return err
	}
	defer rsp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, rsp.Body)
		return nil
	}
	if err := decodeJSON(rsp.Body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func decodeJSON(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}

// Health checks the server is up
func (c *Client) Health(ctx context.Context) (httpapi.Health, error) {
	var health httpapi.Health
	err := c.do(ctx, http.MethodGet, "/api/health", nil, nil, &health)
	return health, err
}

// IsUnreachable reports whether err came from the transport rather than
// from a server response
func IsUnreachable(err error) bool {
	var statusErr *StatusError
	return err != nil && !errors.As(err, &statusErr)
}
