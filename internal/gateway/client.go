// Package gateway is the typed REST client for the academic-records backend.
// It owns the session cookie jar; every other component talks to the backend
// through it.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/gerenciamento-cursos/painel/pkg/errors"
	"github.com/gerenciamento-cursos/painel/pkg/middleware/requestid"
)

// maxErrorBody bounds how much of an error response is read for its message.
const maxErrorBody = 64 * 1024

// Observer receives timing for every upstream call.
type Observer interface {
	ObserveUpstreamRequest(resource, method string, status int, duration time.Duration)
}

// Client issues requests against the backend's /api base path. The zero value
// is not usable; construct with New.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	metrics Observer
}

// New builds a Client with a fresh cookie jar. The jar carries the backend's
// session cookie between the login round-trip and subsequent calls.
func New(baseURL string, timeout time.Duration, logger *zap.Logger, metrics Observer) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("gateway: base URL is required")
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("gateway: build cookie jar: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout, Jar: jar},
		logger:  logger,
		metrics: metrics,
	}, nil
}

// getJSON issues a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, resource, path string, out interface{}) error {
	return c.do(ctx, resource, http.MethodGet, path, nil, "", out)
}

// sendJSON issues a request with a JSON body, decoding the response into out
// when out is non-nil.
func (c *Client) sendJSON(ctx context.Context, resource, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode request body")
		}
		body = bytes.NewReader(encoded)
	}
	return c.do(ctx, resource, method, path, body, "application/json", out)
}

// sendForm issues a form-encoded POST, used only by the login boundary.
func (c *Client) sendForm(ctx context.Context, resource, path, form string) error {
	return c.do(ctx, resource, http.MethodPost, path, strings.NewReader(form), "application/x-www-form-urlencoded", nil)
}

func (c *Client) do(ctx context.Context, resource, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestid.Header, uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.observe(resource, method, 0, elapsed)
		c.logger.Warn("upstream request failed",
			zap.String("resource", resource),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "request to backend failed")
	}
	defer resp.Body.Close()

	c.observe(resource, method, resp.StatusCode, elapsed)
	c.logger.Debug("upstream request",
		zap.String("resource", resource),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", elapsed),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return c.errorFromResponse(method, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "decode backend response")
	}
	return nil
}

func (c *Client) observe(resource, method string, status int, elapsed time.Duration) {
	if c.metrics != nil {
		c.metrics.ObserveUpstreamRequest(resource, method, status, elapsed)
	}
}

// apiError is the backend's error body; message is optional.
type apiError struct {
	Message string `json:"message"`
}

// errorFromResponse maps a non-2xx response to the client taxonomy, keeping
// the server-supplied message when the body carries one.
func (c *Client) errorFromResponse(method string, resp *http.Response) error {
	var message string
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil && len(raw) > 0 {
		var body apiError
		if json.Unmarshal(raw, &body) == nil {
			message = strings.TrimSpace(body.Message)
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return appErrors.Clone(appErrors.ErrUnauthenticated, message)
	case http.StatusForbidden:
		return appErrors.Clone(appErrors.ErrForbidden, message)
	case http.StatusNotFound:
		return appErrors.Clone(appErrors.ErrNotFound, message)
	}

	base := appErrors.ErrMutationRejected
	if method == http.MethodGet {
		base = appErrors.ErrLoadFailed
	}
	mapped := appErrors.Clone(base, message)
	mapped.Status = resp.StatusCode
	return mapped
}
