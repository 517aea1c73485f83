// Package client is a typed HTTP client for the platform API.
//
// Every operation takes a context, fills its path from required parameters,
// and returns the decoded models of package models. Non 2xx responses are
// returned as *APIError carrying the server's RuntimeError payload.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config configures a Client.
type Config struct {
	// Host is the base URL of the API, e.g. "http://localhost:8000".
	Host string
	// Token is sent as "Authorization: <AuthScheme> <Token>" when set.
	Token string
	// AuthScheme defaults to "Token".
	AuthScheme string
	// Timeout bounds each attempt. Ignored when HTTPClient is set.
	Timeout time.Duration
	// Compress is the Content-Encoding of request bodies: "", "gzip",
	// "zstd" or "br".
	Compress string
	// Retries is the number of additional attempts of idempotent requests.
	Retries int
	// UserAgent defaults to "plx-go".
	UserAgent string
	// HTTPClient defaults to an http.Client with Timeout.
	HTTPClient *http.Client
}

// Client calls the platform API.
type Client struct {
	base      *url.URL
	auth      string
	compress  string
	retries   int
	userAgent string
	hc        *http.Client

	// backoff is the delay before the first retry; it doubles on every
	// retry up to maxBackoff.
	backoff    time.Duration
	maxBackoff time.Duration
}

// New returns a Client for cfg.
func New(cfg Config) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(cfg.Host, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid host: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid host %q: scheme must be http or https", cfg.Host)
	}
	switch cfg.Compress {
	case "", "identity", "gzip", "zstd", "br":
	default:
		return nil, fmt.Errorf("unsupported compression %q", cfg.Compress)
	}
	if cfg.Retries < 0 {
		return nil, errors.New("retries must not be negative")
	}
	c := &Client{
		base:       u,
		compress:   cfg.Compress,
		retries:    cfg.Retries,
		userAgent:  cfg.UserAgent,
		hc:         cfg.HTTPClient,
		backoff:    200 * time.Millisecond,
		maxBackoff: 5 * time.Second,
	}
	if c.compress == "identity" {
		c.compress = ""
	}
	if cfg.Token != "" {
		scheme := cfg.AuthScheme
		if scheme == "" {
			scheme = "Token"
		}
		c.auth = scheme + " " + cfg.Token
	}
	if c.userAgent == "" {
		c.userAgent = "plx-go"
	}
	if c.hc == nil {
		c.hc = &http.Client{Timeout: cfg.Timeout}
	}
	return c, nil
}

// call describes one API call.
type call struct {
	op     string
	method string
	route  string
	params map[string]string
	query  url.Values
	body   any
	noAuth bool
}

// expand substitutes the {name} placeholders of route with the escaped
// parameter values.
func expand(op, route string, params map[string]string) (string, error) {
	var b strings.Builder
	rest := route
	for {
		i := strings.IndexByte(rest, '{')
		if i < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		j := strings.IndexByte(rest[i:], '}')
		if j < 0 {
			return "", fmt.Errorf("invalid route %q", route)
		}
		name := rest[i+1 : i+j]
		v := params[name]
		if v == "" {
			return "", &RequiredError{Op: op, Param: name}
		}
		b.WriteString(rest[:i])
		b.WriteString(url.PathEscape(v))
		rest = rest[i+j+1:]
	}
}

func idempotent(method string) bool {
	return method == http.MethodGet || method == http.MethodDelete
}

func retryable(status int) bool {
	return status == http.StatusBadGateway || status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout
}

// do sends the call and decodes a successful response into out, which may be
// nil.
func (c *Client) do(ctx context.Context, r *call, out any) error {
	p, err := expand(r.op, r.route, r.params)
	if err != nil {
		return err
	}
	target := c.base.String() + p
	if len(r.query) != 0 {
		target += "?" + r.query.Encode()
	}
	var body []byte
	if r.body != nil {
		if body, err = json.Marshal(r.body); err != nil {
			return fmt.Errorf("%s: failed to encode request: %w", r.op, err)
		}
		if c.compress != "" {
			if body, err = encode(body, c.compress); err != nil {
				return fmt.Errorf("%s: %w", r.op, err)
			}
		}
	}
	attempts := 1
	if idempotent(r.method) {
		attempts += c.retries
	}
	delay := c.backoff
	for attempt := 1; ; attempt++ {
		status, data, err := c.send(ctx, r, target, body)
		last := attempt >= attempts || ctx.Err() != nil
		if err == nil && !retryable(status) || last {
			if err != nil {
				return fmt.Errorf("%s: %w", r.op, err)
			}
			return c.decode(r, status, data, out)
		}
		slog.DebugContext(ctx, "retrying", "op", r.op, "attempt", attempt, "status", status, "err", err, "delay", delay)
		// Full jitter around the current delay.
		d := delay/2 + rand.N(delay/2+1)
		select {
		case <-ctx.Done():
			return fmt.Errorf("%s: %w", r.op, ctx.Err())
		case <-time.After(d):
		}
		delay = min(delay*2, c.maxBackoff)
	}
}

// send performs one attempt and returns the status and decoded body.
func (c *Client) send(ctx context.Context, r *call, u string, body []byte) (int, []byte, error) {
	var rd io.Reader = http.NoBody
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, u, rd)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", acceptEncoding)
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		if c.compress != "" {
			req.Header.Set("Content-Encoding", c.compress)
		}
	}
	if c.auth != "" && !r.noAuth {
		req.Header.Set("Authorization", c.auth)
	}
	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	data, err := decodeBody(resp)
	slog.DebugContext(ctx, "http", "m", r.method, "p", req.URL.Path, "s", resp.StatusCode, "d", time.Since(start).Round(time.Microsecond), "b", len(data))
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, data, nil
}

func (c *Client) decode(r *call, status int, data []byte, out any) error {
	if status/100 != 2 {
		return newAPIError(r, status, data)
	}
	if out == nil || status == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", r.op, err)
	}
	return nil
}

// ListOptions are the common list parameters.
type ListOptions struct {
	Offset int
	// Limit defaults to 20 server side.
	Limit int
	// Sort is one of name, created_at, updated_at, optionally prefixed by
	// "-" for descending order.
	Sort string
	// Query holds comma separated key:value filters, e.g. "kind:s3|gcs".
	Query string
}

func (o *ListOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.Offset > 0 {
		v.Set("offset", fmt.Sprint(o.Offset))
	}
	if o.Limit > 0 {
		v.Set("limit", fmt.Sprint(o.Limit))
	}
	if o.Sort != "" {
		v.Set("sort", o.Sort)
	}
	if o.Query != "" {
		v.Set("query", o.Query)
	}
	return v
}

// Health checks that the server is up.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, &call{op: "health", method: http.MethodGet, route: "/healthz", noAuth: true}, nil)
}
