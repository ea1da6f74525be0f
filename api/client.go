package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	interrors "github.com/cafehub/go-admin-client/internal/errors"
)

// TokenSource supplies the current bearer token, or "" when the session holds
// none. The session store provides this; the request layer never reads
// session state directly.
type TokenSource func() string

// Client is the base HTTP client shared by the per-resource API clients.
// It attaches the bearer token, correlates requests with an X-Request-ID,
// and normalizes failures into *Error values.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	log     zerolog.Logger
}

// Option configures the base Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client (primarily for tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithLogger sets the request logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates the base client. token may be nil for unauthenticated use.
func NewClient(baseURL string, token TokenSource, options ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("[NewClient] baseURL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errors.Wrap(err, "[NewClient] invalid baseURL")
	}
	if token == nil {
		token = func() string { return "" }
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		token:   token,
		log:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// Auth returns the auth endpoints client.
func (c *Client) Auth() *AuthAPI { return &AuthAPI{c} }

// Brands returns the brand endpoints client.
func (c *Client) Brands() *BrandsAPI { return &BrandsAPI{c} }

// Locations returns the location endpoints client.
func (c *Client) Locations() *LocationsAPI { return &LocationsAPI{c} }

// Menu returns the menu endpoints client.
func (c *Client) Menu() *MenuAPI { return &MenuAPI{c} }

// Users returns the user endpoints client.
func (c *Client) Users() *UsersAPI { return &UsersAPI{c} }

// do issues a JSON request and decodes the response into out when out is
// non-nil. Non-2xx responses are returned as *Error; transport failures wrap
// ErrTransport.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "[Client.do] marshal request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "[Client.do] build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Str("method", method).Str("path", path).Err(err).Msg("request failed")
		return interrors.Wrapf(interrors.ErrTransport, "%s %s: %v", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(started)).
		Msg("request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		if raw, readErr := io.ReadAll(resp.Body); readErr == nil {
			_ = json.Unmarshal(raw, &eb)
		}
		apiErr := newError(resp.StatusCode, eb)
		c.log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", apiErr.Status).
			Str("message", apiErr.Message).
			Msg("request rejected")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "[Client.do] decode response %s %s", method, path)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
