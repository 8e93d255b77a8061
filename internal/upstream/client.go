package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cannahub/admin-console/pkg/logger"
	"go.uber.org/zap"
)

// TokenSource yields the bearer token for outgoing requests. It is consulted
// on every single call; no validated session object is cached.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client is the one HTTP gateway to the platform API. Single attempt per
// call: no retries, no backoff, no deduplication.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  logger.ZapLogger
}

type Config struct {
	BaseURL string
	// Timeout of 0 leaves requests unbounded.
	Timeout time.Duration
}

func NewClient(cfg *Config, tokens TokenSource, log logger.ZapLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		tokens:  tokens,
		logger:  log,
	}
}

type requestOptions struct {
	storeID string
	query   url.Values
}

type RequestOption func(*requestOptions)

// WithStoreID sets the X-Store-ID scoping header for store-scoped resources.
func WithStoreID(id string) RequestOption {
	return func(o *requestOptions) { o.storeID = id }
}

func WithQuery(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.query == nil {
			o.query = url.Values{}
		}
		o.query.Set(key, value)
	}
}

// envelope covers every success convention the platform's endpoints use:
// success:true, status:"success", or a bare 2xx. The gateway normalizes all
// of them so callers only see Go errors.
type envelope struct {
	Success *bool               `json:"success"`
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
	Data    json.RawMessage     `json:"data"`
	// Bare resources also carry a "status" field (orders, broadcasts). An
	// "id" at the top level means this is a resource, not an envelope.
	ID string `json:"id"`
}

func (e *envelope) failed() bool {
	if e.Success != nil && !*e.Success {
		return true
	}
	if e.ID != "" {
		return false
	}
	switch strings.ToLower(e.Status) {
	case "error", "failed", "failure":
		return true
	}
	return false
}

func (e *envelope) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// Get issues a GET and decodes the (possibly enveloped) response into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodGet, path, nil, out, opts...)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPost, path, body, out, opts...)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPut, path, body, out, opts...)
}

func (c *Client) Patch(ctx context.Context, path string, body, out interface{}, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPatch, path, body, out, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, opts...)
}

// Do performs one request. out may be nil for calls whose payload the caller
// does not need.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}, opts ...RequestOption) error {
	options := &requestOptions{}
	for _, opt := range opts {
		opt(options)
	}

	fullURL := c.baseURL + path
	if len(options.query) > 0 {
		fullURL += "?" + options.query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if options.storeID != "" {
		req.Header.Set("X-Store-ID", options.storeID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("upstream request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	return c.decode(resp.StatusCode, payload, out)
}

func (c *Client) decode(statusCode int, payload []byte, out interface{}) error {
	var env envelope
	envOK := json.Unmarshal(payload, &env) == nil

	if statusCode < 200 || statusCode >= 300 {
		if envOK && len(env.Errors) > 0 {
			return &ValidationError{Fields: env.Errors}
		}
		msg := ""
		if envOK {
			msg = env.message()
		}
		return &APIError{StatusCode: statusCode, Message: msg}
	}

	if envOK && env.failed() {
		return &APIError{StatusCode: statusCode, Message: env.message()}
	}

	if out == nil {
		return nil
	}

	// Endpoints wrap the resource in "data" or return it bare; accept both.
	if envOK && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return json.Unmarshal(payload, out)
}
