// Package httpapi is the real ports.Backend implementation: a thin typed
// client over the clinic REST API. Every operation funnels through a single
// generic request helper that attaches the bearer token from the request
// context, serializes JSON, and normalizes error handling.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawscare/vetgate/internal/api/metrics"
	"github.com/pawscare/vetgate/internal/core/authctx"
	"github.com/pawscare/vetgate/internal/core/domain"
	"github.com/pawscare/vetgate/internal/core/ports"
)

// Client talks to the clinic backend. No retries, no backoff: failures
// surface immediately to the caller. Timeouts come from the caller's
// context only.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	invalidator ports.SessionInvalidator
	log         zerolog.Logger
}

var _ ports.Backend = (*Client)(nil)

// New creates a Client against baseURL. The invalidator is the single
// session-teardown seam, invoked on any 401 before the error surfaces.
func New(baseURL string, invalidator ports.SessionInvalidator, log zerolog.Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		httpClient:  &http.Client{},
		invalidator: invalidator,
		log:         log,
	}
}

// errorBody is the backend's error convention. Decoding it is best effort:
// an unparseable or empty body degrades to a generic message.
type errorBody struct {
	Detail string `json:"detail"`
}

// request issues one call and decodes a 2xx body into T. A 204 yields the
// zero value of T without touching the body. A 401 from any endpoint clears
// the caller's session through the invalidator and fails with
// domain.ErrUnauthorized.
func request[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var out T

	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return out, fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(buf)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return out, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	token := authctx.Token(ctx)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(method, "error").Inc()
		return out, fmt.Errorf("backend unreachable: %w", err)
	}
	defer res.Body.Close()
	metrics.UpstreamRequestsTotal.WithLabelValues(method, strconv.Itoa(res.StatusCode)).Inc()

	if res.StatusCode == http.StatusUnauthorized && token != "" {
		// A 401 on any authenticated endpoint is session-fatal. Tear the
		// persisted record down before the caller sees the error. A 401
		// without a token (a rejected login) is an ordinary request error
		// so the credential message reaches the caller.
		if c.invalidator != nil {
			if ierr := c.invalidator.Invalidate(ctx); ierr != nil {
				c.log.Error().Err(ierr).Msg("session invalidation failed")
			}
		}
		drainErrorBody(res.Body)
		return out, domain.ErrUnauthorized
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return out, decodeError(res)
	}

	if res.StatusCode == http.StatusNoContent {
		return out, nil
	}

	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// decodeError extracts the backend's {"detail": msg} body. This is a tagged
// parse, never optimistic field access: when the body is not that shape the
// generic "request failed (status)" message is used instead.
func decodeError(res *http.Response) error {
	var eb errorBody
	if err := json.NewDecoder(res.Body).Decode(&eb); err != nil {
		return domain.NewRequestError(res.StatusCode, "")
	}
	return domain.NewRequestError(res.StatusCode, eb.Detail)
}

func drainErrorBody(r io.Reader) {
	_, _ = io.Copy(io.Discard, r)
}

// --- typed helpers shared by the resource catalogue ---

func get[T any](ctx context.Context, c *Client, path string) (*T, error) {
	v, err := request[T](ctx, c, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func list[T any](ctx context.Context, c *Client, path string, query url.Values) (*domain.Page[T], error) {
	v, err := request[domain.Page[T]](ctx, c, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func post[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	v, err := request[T](ctx, c, http.MethodPost, path, nil, body)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func put[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	v, err := request[T](ctx, c, http.MethodPut, path, nil, body)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func del(ctx context.Context, c *Client, path string) error {
	_, err := request[struct{}](ctx, c, http.MethodDelete, path, nil, nil)
	return err
}
