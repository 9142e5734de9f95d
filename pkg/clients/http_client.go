package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = time.Second * 10

var (
	ErrFailedCloseResponseBody = errors.New("failed close response body")
	ErrTimeout                 = errors.New("request timeout")
)

//go:generate mockgen -source=http_client.go -destination=mock_http_client.go -package=clients

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource is the slice of the session the transport needs.
type TokenSource interface {
	Token() string
	Clear() error
}

// UnauthorizedHandler sends the user back to the authentication entry point.
// path is the request path that got the 401.
type UnauthorizedHandler func(path string)

// ResponseError is returned for every non-2xx response.
type ResponseError struct {
	StatusCode int
	// Message is the server supplied message, empty when the body had none.
	Message string
	Body    []byte
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
}

type HTTPClientAdapter struct {
	client *http.Client
}

func (h *HTTPClientAdapter) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

type Option func(*HTTPClient)

func WithBaseURL(baseURL string) Option {
	return func(h *HTTPClient) {
		h.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithTokenSource(tokens TokenSource) Option {
	return func(h *HTTPClient) {
		h.tokens = tokens
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(h *HTTPClient) {
		if timeout > 0 {
			h.timeout = timeout
		}
	}
}

func OnUnauthorized(handler UnauthorizedHandler) Option {
	return func(h *HTTPClient) {
		h.onUnauthorized = handler
	}
}

type HTTPClient struct {
	client         HTTPClientI
	baseURL        string
	tokens         TokenSource
	onUnauthorized UnauthorizedHandler
	timeout        time.Duration
}

func NewHTTPClient(opts ...Option) *HTTPClient {
	h := &HTTPClient{
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.client = &HTTPClientAdapter{
		client: &http.Client{Timeout: h.timeout},
	}
	return h
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClient) SetClient(mock HTTPClientI) {
	h.client = mock
}

// DoJSON sends body as JSON to path under the base URL and decodes a 2xx
// response into out. A *json.RawMessage out receives the body untouched.
func (h *HTTPClient) DoJSON(ctx context.Context, method, path string, body, out any) (err error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	var reqBody io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	h.authorize(req)

	resp, err := h.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w of %s exceeded", ErrTimeout, h.timeout)
		}
		return err
	}

	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w of %s exceeded", ErrTimeout, h.timeout)
		}
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		h.unauthorized(method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ResponseError{
			StatusCode: resp.StatusCode,
			Message:    serverMessage(respBody),
			Body:       respBody,
		}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], respBody...)
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}
	return nil
}

func (h *HTTPClient) authorize(req *http.Request) {
	if h.tokens == nil {
		return
	}
	if token := h.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (h *HTTPClient) unauthorized(method, path string) {
	zap.L().Warn("unauthorized response, clearing session", zap.String("method", method), zap.String("path", path))
	if h.tokens != nil {
		if err := h.tokens.Clear(); err != nil {
			zap.L().Error("failed to clear auth token", zap.Error(err))
		}
	}
	if h.onUnauthorized != nil {
		h.onUnauthorized(path)
	}
}

func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
