package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
	"github.com/niksmo/ecom-admin/pkg/retry"
)

var _ port.Backend = (*Client)(nil)

const (
	defaultTimeout = 10 * time.Second
	retryDelay     = 200 * time.Millisecond
)

// APIError is an error response of the storefront API.
// It matches the domain error of its status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusNotFound:
		return target == domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return target == domain.ErrInvalid
	case http.StatusConflict:
		return target == domain.ErrConflict
	default:
		return target == domain.ErrUpstream
	}
}

type Opt func(*Client)

func TokenOpt(token string) Opt {
	return func(c *Client) {
		c.token = token
	}
}

func TimeoutOpt(d time.Duration) Opt {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// MaxAttemptsOpt sets how many times an idempotent GET is tried.
func MaxAttemptsOpt(n int) Opt {
	return func(c *Client) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

func HTTPClientOpt(hc *http.Client) Opt {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// Client implements [port.Backend] over the storefront REST API.
type Client struct {
	baseURL     string
	token       string
	httpClient  *http.Client
	maxAttempts int
}

// New returns a client for baseURL, e.g. "http://localhost:3000".
func New(baseURL string, opts ...Opt) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: defaultTimeout},
		maxAttempts: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON is doJSON for GET requests, retried on upstream failures.
func (c *Client) getJSON(ctx context.Context, path string, result any) error {
	return retry.Do(ctx, retry.RetryConfig{
		MaxAttempts: c.maxAttempts,
		Backoff:     retry.ExponentialBackoff(retryDelay),
		ShouldRetry: isTransient,
	}, func() error {
		return c.doJSON(ctx, http.MethodGet, path, nil, result)
	})
}

// doJSON sends body as JSON and decodes the response into result.
// Numbers inside untyped values are kept as [json.Number].
func (c *Client) doJSON(
	ctx context.Context, method, path string, body any, result any,
) error {
	var (
		bodyReader  io.Reader
		contentType string
	)
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
		contentType = "application/json"
	}

	respBody, _, err := c.do(ctx, method, path, bodyReader, contentType)
	if err != nil {
		return err
	}

	if result == nil || len(respBody) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(respBody))
	dec.UseNumber()
	if err := dec.Decode(result); err != nil {
		return fmt.Errorf("%w: decoding response: %w", domain.ErrUpstream, err)
	}
	return nil
}

// do performs a request and returns the body of a successful response.
func (c *Client) do(
	ctx context.Context, method, path string, body io.Reader, contentType string,
) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, fmt.Errorf("performing request: %w", ctxErr)
		}
		return nil, nil, fmt.Errorf("%w: performing request: %w", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, resp.Header, nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading response: %w", domain.ErrUpstream, err)
	}

	if resp.StatusCode >= 400 {
		return nil, nil, apiError(resp.StatusCode, respBody)
	}
	return respBody, resp.Header, nil
}

func apiError(status int, body []byte) *APIError {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &errResp) == nil {
		if errResp.Error != "" {
			return &APIError{StatusCode: status, Message: errResp.Error}
		}
		if errResp.Message != "" {
			return &APIError{StatusCode: status, Message: errResp.Message}
		}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Message: msg}
}

func isTransient(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return errors.Is(err, domain.ErrUpstream)
}

// UserMessage is the message of the storefront API without the status.
func (e *APIError) UserMessage() string {
	return e.Message
}
