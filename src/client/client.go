package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/papertrade-labs/tastyworks-go/src/models"
)

// BaseURL is the broker's certification environment endpoint.
const BaseURL = "https://api.cert.tastyworks.com"

const userAgent = "tastyworks-go"

// Client issues authenticated calls against the brokerage API. It is immutable
// after Login and safe for concurrent use from multiple goroutines.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	sessionToken string
	inspect      func(body string)
}

// Option adjusts a Client before the login request is issued.
type Option func(*Client)

func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient replaces the underlying transport, e.g. to set timeouts. The
// client itself layers no timeout on top; cancellation comes from the caller's
// context.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithInspector replaces the diagnostic sink that receives every raw response
// body, success or error, before it is parsed. The sink cannot alter the
// parse outcome.
func WithInspector(fn func(body string)) Option {
	return func(c *Client) {
		c.inspect = fn
	}
}

// Login authenticates against POST /sessions and returns a client that sends
// the resulting session token on every subsequent request. Invalid
// credentials surface as a *BrokerError, network failures as a
// *TransportError.
func Login(ctx context.Context, login, password string, rememberMe bool, opts ...Option) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    BaseURL,
		inspect: func(body string) {
			log.Tracef("tastyworks response: %s", body)
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	credentials := models.LoginCredentials{
		Login:      login,
		Password:   password,
		RememberMe: rememberMe,
	}

	resp, err := Post[models.LoginResponse](ctx, c, "/sessions", credentials)
	if err != nil {
		return nil, err
	}

	c.sessionToken = resp.SessionToken

	return c, nil
}

// SessionToken returns the token obtained at login time.
func (c *Client) SessionToken() string {
	return c.sessionToken
}

// Get issues an authenticated GET and decodes the response envelope into T.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	return do[T](ctx, c, http.MethodGet, path, nil)
}

// Post serializes payload, issues an authenticated POST and decodes the
// response envelope into T. Not idempotent: retrying a timed-out call may
// double-submit.
func Post[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	var zero T

	body, err := json.Marshal(payload)
	if err != nil {
		return zero, fmt.Errorf("Post: failed to serialize payload: %w", err)
	}

	return do[T](ctx, c, http.MethodPost, path, body)
}

func do[T any](ctx context.Context, c *Client, method, path string, body []byte) (T, error) {
	var zero T

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return zero, fmt.Errorf("do: failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	if c.sessionToken != "" {
		req.Header.Set("Authorization", c.sessionToken)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return zero, &TransportError{Op: method + " " + path, Cause: err}
	}

	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return zero, &TransportError{Op: method + " " + path, Cause: err}
	}

	if c.inspect != nil {
		c.inspect(string(raw))
	}

	return parseResponse[T](raw)
}
