// Package api is the single point of egress for all Lumera platform calls.
// A Client runs every outgoing request through an ordered list of request
// transforms (content type, request ID, auth headers) and every outcome
// through an ordered list of response hooks (session-expiry handling), so
// command code never touches headers or session invalidation itself.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lumera-core/lumera-cli/internal/errors"
	"github.com/lumera-core/lumera-cli/internal/log"
	"github.com/lumera-core/lumera-cli/internal/session"
)

// Navigator is the client's view of the navigation layer. The session-expiry
// hook uses it to force the user back to the login route.
type Navigator interface {
	// Location returns the current route.
	Location() string
	// Navigate moves to the given route.
	Navigate(route string)
}

// RequestTransform mutates an outgoing request before it is sent.
type RequestTransform func(req *http.Request) error

// ResponseHook observes the outcome of a request and may replace the error.
// resp is nil when the transport failed; err is the transport error in that
// case. Hooks must never swallow a failure: a non-nil input error or failed
// response must map to a non-nil output error.
type ResponseHook func(req *http.Request, resp *http.Response, err error) error

// Client is the configured HTTP client for the Lumera platform.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      *session.Store
	nav        Navigator
	logger     *log.Logger
	loginRoute string

	transforms []RequestTransform
	hooks      []ResponseHook
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the client logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithLoginRoute overrides the route the session-expiry hook redirects to.
func WithLoginRoute(route string) Option {
	return func(c *Client) { c.loginRoute = route }
}

// WithRequestTransform appends an extra request transform.
func WithRequestTransform(t RequestTransform) Option {
	return func(c *Client) { c.transforms = append(c.transforms, t) }
}

// WithResponseHook appends an extra response hook.
func WithResponseHook(h ResponseHook) Option {
	return func(c *Client) { c.hooks = append(c.hooks, h) }
}

// NewClient creates a platform client. The store is read synchronously on
// every request for the token and active company; nav may be nil when no
// navigation side effects are wanted (tests, scripts).
func NewClient(baseURL string, store *session.Store, nav Navigator, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		store:      store,
		nav:        nav,
		logger:     log.DefaultLogger(),
		loginRoute: "/login",
	}

	c.transforms = []RequestTransform{
		contentTypeTransform,
		requestIDTransform,
		c.authTransform,
	}
	c.hooks = []ResponseHook{
		c.sessionExpiryHook,
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// contentTypeTransform marks every request as JSON.
func contentTypeTransform(req *http.Request) error {
	req.Header.Set("Content-Type", "application/json")
	return nil
}

// requestIDTransform tags every request for backend-side correlation.
func requestIDTransform(req *http.Request) error {
	req.Header.Set("X-Request-Id", uuid.NewString())
	return nil
}

// authTransform reads the session store at request time and attaches the
// bearer token and tenant header when present. Reading per request (rather
// than caching on the client) is what makes the persist-before-fetch
// ordering of session establishment observable.
func (c *Client) authTransform(req *http.Request) error {
	if token := c.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if company := c.store.ActiveCompany(); company != nil && company.CompanyID != "" {
		req.Header.Set("x-company-id", company.CompanyID)
	}
	return nil
}

// sessionExpiryHook invalidates the local session on 401/403 and redirects
// to the login route. The active company slot is left untouched. A transport
// failure (resp == nil) is never treated as expiry.
func (c *Client) sessionExpiryHook(req *http.Request, resp *http.Response, err error) error {
	if err != nil || resp == nil {
		return err
	}

	if resp.StatusCode != http.StatusUnauthorized && resp.StatusCode != http.StatusForbidden {
		return err
	}

	if clearErr := c.store.ClearSession(); clearErr != nil {
		c.logger.WithError(clearErr).Warn("failed to clear session after auth failure")
	}

	if c.nav != nil && c.nav.Location() != c.loginRoute {
		c.nav.Navigate(c.loginRoute)
	}

	c.logger.Warn("session invalidated by platform",
		"status", resp.StatusCode,
		"path", req.URL.Path)

	return errors.NewSessionExpiredError(resp.StatusCode)
}

// errorBody is the structured message shape of a failed response.
type errorBody struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// do performs a request and decodes the response into out (when non-nil).
// All errors surface to the caller exactly once; the hooks may add side
// effects but never swallow them.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(errors.ErrCodeAPIRequest, "failed to encode request body", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(errors.ErrCodeAPIRequest, "failed to create request", err)
	}

	for _, transform := range c.transforms {
		if err := transform(req); err != nil {
			return err
		}
	}

	resp, doErr := c.httpClient.Do(req)

	hookErr := doErr
	for _, hook := range c.hooks {
		hookErr = hook(req, resp, hookErr)
	}

	if resp == nil {
		if hookErr == nil {
			hookErr = doErr
		}
		return errors.NewNetworkError(hookErr)
	}
	defer resp.Body.Close()

	if hookErr != nil {
		io.Copy(io.Discard, resp.Body)
		return hookErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)

		var eb errorBody
		if unmarshalErr := json.Unmarshal(data, &eb); unmarshalErr == nil && eb.Message != "" {
			return errors.NewRequestError(resp.StatusCode, eb.Message)
		}
		return errors.NewRequestError(resp.StatusCode, "")
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(errors.ErrCodeAPIDecode,
				fmt.Sprintf("failed to decode response from %s", path), err)
		}
	}
	return nil
}

// get issues a GET request.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// post issues a POST request.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// put issues a PUT request.
func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// patch issues a PATCH request.
func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// envelope is the standard `{ok, data}` response wrapper.
type envelope[T any] struct {
	OK   bool `json:"ok"`
	Data T    `json:"data"`
}

// okResponse is the minimal `{ok}` acknowledgement.
type okResponse struct {
	OK bool `json:"ok"`
}
