// Package retail is the typed client for the storefront's backend
// proxy. One gateway Client carries all HTTP traffic; thin service
// wrappers (search, products, categories, recommendations) handle
// parameter defaulting and response unwrapping only. No retries, no
// caching.
package retail

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
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

// APIError is the single error shape every transport or server failure
// is translated into. Message is display-ready.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// envelope is the proxy's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Detail  string          `json:"detail"`
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.SugaredLogger
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

func NewClient(baseURL string, logger *zap.SugaredLogger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues one request and decodes the envelope's data field into out.
// Error messages prefer, in order, the server's error field, its detail
// field, then a generic network-failure message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Errorw("retail request failed", "method", method, "path", path, "error", err)
		return &APIError{Message: "no response from server"}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: resp.StatusCode, Message: "no response from server"}
	}

	var env envelope
	// The proxy always answers with the envelope, but tolerate bare
	// payloads so a misconfigured upstream still yields a usable error.
	if err := json.Unmarshal(data, &env); err != nil {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return fmt.Errorf("decode response: %w", err)
		}
		return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || (!env.Success && env.Data == nil) {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(env)}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// anonymousVisitor mirrors the proxy's own fallback id shape for calls
// made before an identity exists.
func anonymousVisitor() string {
	return "visitor_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

func errorMessage(env envelope) string {
	if env.Error != "" {
		return env.Error
	}
	if env.Detail != "" {
		return env.Detail
	}
	return "server error"
}
