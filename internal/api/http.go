package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/judix-app/judix-cli/internal/logging"
	"github.com/judix-app/judix-cli/internal/models"
)

// HTTPClient is the concrete Client over the Judix REST API.
//
// Every request carries a JSON content type and a generated X-Request-Id.
// When the session store holds a token it is attached as
// "Authorization: Bearer <token>"; requests without a token go out
// unauthenticated. A 401 response wipes the session store and fires the
// OnUnauthorized callback once, then surfaces ErrUnauthorized to the caller.
// There are no retries and no backoff anywhere.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	session SessionStore
	log     logging.Logger

	// onUnauthorized is invoked after a 401 has cleared the session. The
	// UI shell subscribes to drop back to the login prompt.
	onUnauthorized func()
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout caps the total duration of each request.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithOnUnauthorized registers the session-expiry callback.
func WithOnUnauthorized(fn func()) Option {
	return func(c *HTTPClient) { c.onUnauthorized = fn }
}

// WithHTTPClient swaps the underlying http.Client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// NewHTTPClient builds a client rooted at baseURL (e.g.
// "http://localhost:8080/api/v1/"). A missing trailing slash is added so
// relative endpoint paths resolve under the version prefix.
func NewHTTPClient(baseURL string, session SessionStore, log logging.Logger, opts ...Option) (*HTTPClient, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: 15 * time.Second},
		session: session,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do issues one request. body (when non-nil) is JSON-encoded; out (when
// non-nil) receives the decoded 2xx response body. fallback is the error
// message used when the server does not report one.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any, fallback string) error {
	ref, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", fallback, path, err)
	}
	target := c.baseURL.ResolveReference(ref)

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encoding request: %w", fallback, err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), buf)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if token, err := c.session.Token(ctx); err != nil {
		c.log.Warn(ctx, "reading session token", "error", err)
	} else if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "transport failure", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s: %w", fallback, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.expireSession(ctx)
		return fmt.Errorf("%s: %w", fallback, statusError(resp.StatusCode, serverMessage(resp.Body)))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := serverMessage(resp.Body)
		if msg == "" {
			msg = fallback
		}
		return statusError(resp.StatusCode, msg)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s: decoding response: %w", fallback, err)
		}
	}
	return nil
}

// expireSession wipes the stored token and cached user and notifies the
// shell. The wipe is unconditional: a 401 is never recoverable in place.
func (c *HTTPClient) expireSession(ctx context.Context) {
	if err := c.session.Clear(ctx); err != nil {
		c.log.Error(ctx, "clearing session after 401", "error", err)
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

// serverMessage extracts the human-readable message from an error payload,
// accepting both {"message": ...} and {"error": ...} shapes.
func serverMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "auth/", req, &resp, "login failed"); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login failed: no token received")
	}
	return resp.Token, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var resp struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "auth/me", nil, &resp, "failed to fetch user details"); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, fmt.Errorf("failed to fetch user details: empty response")
	}
	return resp.User, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) error {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := c.do(ctx, http.MethodPost, "user/", reg, &resp, "registration failed"); err != nil {
		return err
	}
	// The backend can report failure inside a 2xx response. Surface it
	// instead of swallowing it.
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = resp.Error
		}
		if msg == "" {
			return ErrRegistrationRejected
		}
		return fmt.Errorf("%w: %s", ErrRegistrationRejected, msg)
	}
	return nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	var resp struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPatch, "user/profile", upd, &resp, "failed to update profile"); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, fmt.Errorf("failed to update profile: empty response")
	}
	return resp.User, nil
}

func (c *HTTPClient) ListCases(ctx context.Context) ([]models.Case, error) {
	var resp struct {
		Cases []models.Case `json:"cases"`
	}
	if err := c.do(ctx, http.MethodGet, "case/user/", nil, &resp, "failed to fetch cases"); err != nil {
		return nil, err
	}
	return resp.Cases, nil
}

func (c *HTTPClient) GetCase(ctx context.Context, id string) (*models.Case, error) {
	var resp struct {
		Case *models.Case `json:"case"`
	}
	path := "case/user/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp, "failed to fetch case"); err != nil {
		return nil, err
	}
	if resp.Case == nil {
		return nil, fmt.Errorf("failed to fetch case: empty response")
	}
	return resp.Case, nil
}

func (c *HTTPClient) CreateCase(ctx context.Context, draft models.CaseDraft) (*models.Case, error) {
	var resp struct {
		Case *models.Case `json:"case"`
	}
	if err := c.do(ctx, http.MethodPost, "case", draft, &resp, "failed to create case"); err != nil {
		return nil, err
	}
	if resp.Case == nil {
		return nil, fmt.Errorf("failed to create case: empty response")
	}
	return resp.Case, nil
}

func (c *HTTPClient) UpdateCase(ctx context.Context, id string, upd models.CaseUpdate) (*models.Case, error) {
	var resp struct {
		Case *models.Case `json:"case"`
	}
	path := "case/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPatch, path, upd, &resp, "failed to update case"); err != nil {
		return nil, err
	}
	if resp.Case == nil {
		return nil, fmt.Errorf("failed to update case: empty response")
	}
	return resp.Case, nil
}

func (c *HTTPClient) DeleteCase(ctx context.Context, id string) error {
	path := "case/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, "failed to delete case")
}
