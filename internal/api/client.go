// Package api implements the REST client for the TourMate backend, the sole
// external collaborator of this application. All business logic (auth,
// persistence, payment capture, moderation rules) lives behind it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/tourmate-app/tourmate-cli/internal/logging"
	"github.com/tourmate-app/tourmate-cli/internal/session"
)

// Client talks to the backend REST API. The bearer token, when a session
// exists, is attached to every request. Requests rely on the transport's
// default timeout behavior; there is no retry policy.
type Client struct {
	baseURL string
	http    *http.Client
	session session.Store
	log     logging.Logger
}

func New(baseURL string, sess session.Store, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		session: sess,
		log:     log,
	}
}

// do issues a single request and decodes the response envelope, mapping
// every failure into one of the boundary error classes:
//
//   - transport error        -> ErrUnavailable
//   - undecodable body       -> ErrBadResponse
//   - 401                    -> ErrUnauthorized
//   - success=false / non-2xx -> ErrDeclined
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) (*Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if sess, err := c.session.Current(ctx); err != nil {
		c.log.Warn(ctx, "session read failed, sending request unauthenticated", "error", err)
	} else if sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %s %s returned undecodable body", ErrBadResponse, method, path)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, env.Message)
	}
	if !env.Success || resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", ErrDeclined, env.Message)
	}
	return &env, nil
}

func (c *Client) getJSON(ctx context.Context, path string) (*Envelope, error) {
	return c.do(ctx, http.MethodGet, path, "", nil)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*Envelope, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(b))
}

func (c *Client) patchJSON(ctx context.Context, path string, payload any) (*Envelope, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPatch, path, "application/json", bytes.NewReader(b))
}
