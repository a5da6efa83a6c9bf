package apiclient

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/proveo/clientkit/pkg/clientstate"
	"github.com/proveo/clientkit/pkg/correlation"
)

// HeaderCSRF carries the anti-forgery token on state-changing requests.
const HeaderCSRF = "X-CSRF-Token"

// Client wraps an http.Client with the Proveo request conventions: a
// cookie jar so the session credential rides along automatically, a
// correlation ID stamped on every request, and the CSRF token attached
// to state-changing verbs when one is held.
type Client struct {
	http    *http.Client
	baseURL *url.URL
	state   *clientstate.Manager
	log     *slog.Logger
}

// New creates a Client over the given state manager. A nil log
// disables logging.
func New(cfg Config, state *clientstate.Manager, log *slog.Logger) (*Client, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("apiclient: invalid base URL %q: %w", cfg.BaseURL, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("apiclient: cookie jar: %w", err)
	}

	return &Client{
		http: &http.Client{
			Jar:       jar,
			Timeout:   cfg.Timeout,
			Transport: &correlation.Transport{},
		},
		baseURL: base,
		state:   state,
		log:     log,
	}, nil
}

// stateChangingMethods get the CSRF header when a token is held.
var stateChangingMethods = map[string]bool{
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// Do issues a request against the backend and returns the raw
// response; parsing and sanitizing the body is the caller's job,
// typically via sanitizer.APIResponse.
//
// Each call gets a fresh correlation ID unless the context already
// carries one. The CSRF token is attached only for state-changing
// verbs and only when held. Transport failures are logged and
// propagated without retry, and never mutate client state. A 401
// response clears the login state; a 403 deliberately does not.
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	if correlation.FromContext(ctx) == "" {
		ctx = correlation.WithContext(ctx, correlation.NewID())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return nil, fmt.Errorf("apiclient: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if stateChangingMethods[method] {
		if token, held := c.state.CSRFToken(ctx); held {
			req.Header.Set(HeaderCSRF, token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "request failed", "method", method, "endpoint", path, "error", err)
		return nil, fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}

	c.log.DebugContext(ctx, "request completed", "method", method, "endpoint", path, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.state.HandleUnauthorized(ctx); err != nil {
			c.log.ErrorContext(ctx, "failed to clear login state after 401", "error", err)
		}
	}

	return resp, nil
}

// State exposes the manager the client reconciles into.
func (c *Client) State() *clientstate.Manager {
	return c.state
}
