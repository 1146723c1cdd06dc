// Package api implements the JSON HTTP gateway to the remindme backend.
// It owns the error taxonomy for everything that crosses the wire:
// RequestError for non-2xx statuses, NetworkError for transport failures,
// and ErrNoSession for authenticated calls without a token.
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

	"remindme/internal/logging"
)

// TokenSource supplies the bearer token for authenticated requests.
// The session store satisfies it; absence of a session is reported as
// ErrNoSession.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Gateway performs authenticated JSON calls against a single backend host.
// It performs no retries; the only timeout is the HTTP client's.
type Gateway struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

func NewGateway(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// Do issues a single JSON request. body (if non-nil) is marshalled as the
// request body; out (if non-nil) receives the unmarshalled response body.
// When authed is true the session token is attached as a bearer header.
func (g *Gateway) Do(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	u := g.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if authed {
		token, err := g.tokens.Token(ctx)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		g.log.Debug(ctx, "request failed", "method", method, "path", path, "status", resp.StatusCode)
		return &RequestError{Status: resp.StatusCode, Body: data}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (g *Gateway) Get(ctx context.Context, path string, query url.Values, out any, authed bool) error {
	return g.Do(ctx, http.MethodGet, path, query, nil, out, authed)
}

func (g *Gateway) Post(ctx context.Context, path string, body, out any, authed bool) error {
	return g.Do(ctx, http.MethodPost, path, nil, body, out, authed)
}

func (g *Gateway) Put(ctx context.Context, path string, body, out any, authed bool) error {
	return g.Do(ctx, http.MethodPut, path, nil, body, out, authed)
}

func (g *Gateway) Delete(ctx context.Context, path string, authed bool) error {
	return g.Do(ctx, http.MethodDelete, path, nil, nil, nil, authed)
}
