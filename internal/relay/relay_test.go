package relay

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ecopay/ecopay/pkg/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Relay, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	return New("https://upstream.test/api/", client), client
}

func response(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestUpstreamPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "/proxy-api/transactions", expected: "/transactions"},
		{path: "/api/auth/signin", expected: "/auth/signin"},
		{path: "/proxy-api", expected: "/"},
		{path: "/proxy-api/api/savings", expected: "/api/savings"},
		{path: "/profile", expected: "/profile"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, UpstreamPath(tt.path))
		})
	}
}

func TestRelay_ServeHTTP(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		auth         string
		prepareMock  func(client *clients.MockHTTPClientI)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "Forward GET with query",
			method: http.MethodGet,
			path:   "/proxy-api/transactions?limit=5",
			auth:   "Bearer abc",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
					assert.Equal(t, "https://upstream.test/api/transactions?limit=5", req.URL.String())
					assert.Equal(t, http.MethodGet, req.Method)
					assert.Equal(t, "Bearer abc", req.Header.Get("Authorization"))
					assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
					return response(http.StatusOK, `[{"id":"1"}]`), nil
				})
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":"1"}]`,
		},
		{
			name:   "Forward JSON body",
			method: http.MethodPost,
			path:   "/api/auth/signin",
			body:   `{ "email" : "a@b.c" }`,
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
					body, err := io.ReadAll(req.Body)
					require.NoError(t, err)
					assert.JSONEq(t, `{"email":"a@b.c"}`, string(body))
					assert.Empty(t, req.Header.Get("Authorization"))
					return response(http.StatusUnauthorized, `{"success":false,"error":"Invalid credentials"}`), nil
				})
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"success":false,"error":"Invalid credentials"}`,
		},
		{
			name:   "Drop non JSON body",
			method: http.MethodPut,
			path:   "/proxy-api/savings/1",
			body:   `amount=5`,
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
					body, err := io.ReadAll(req.Body)
					require.NoError(t, err)
					assert.Empty(t, body)
					return response(http.StatusBadRequest, `{"success":false,"error":"Invalid amount"}`), nil
				})
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"success":false,"error":"Invalid amount"}`,
		},
		{
			name:   "Drop null body",
			method: http.MethodPost,
			path:   "/proxy-api/transactions",
			body:   `null`,
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
					body, err := io.ReadAll(req.Body)
					require.NoError(t, err)
					assert.Empty(t, body)
					return response(http.StatusBadRequest, `{"success":false,"error":"Invalid transaction"}`), nil
				})
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"success":false,"error":"Invalid transaction"}`,
		},
		{
			name:   "Non JSON upstream body",
			method: http.MethodGet,
			path:   "/proxy-api/profile",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Do(gomock.Any()).Return(response(http.StatusBadGateway, `<html>bad gateway</html>`), nil)
			},
			expectedCode: http.StatusBadGateway,
			expectedBody: `{}`,
		},
		{
			name:   "Upstream failure",
			method: http.MethodGet,
			path:   "/proxy-api/profile",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"success":false,"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relay, client := NewMock(t)
			tt.prepareMock(client)

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()
			relay.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}

func TestRelay_AgainstServer(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer upstream.Close()

	relay := New(upstream.URL+"/api", clients.NewHTTPClient())
	w := httptest.NewRecorder()
	relay.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/proxy-api/projects", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := CORS("https://ecopay.test")(next)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/proxy-api/profile", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://ecopay.test", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, allowMethods, w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, allowHeaders, w.Header().Get("Access-Control-Allow-Headers"))

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/proxy-api/profile", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "https://ecopay.test", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAllowedOrigin(t *testing.T) {
	assert.Equal(t, "https://ecopay.test", AllowedOrigin(true, "https://ecopay.test"))
	assert.Equal(t, "*", AllowedOrigin(false, "https://ecopay.test"))
	assert.Equal(t, "*", AllowedOrigin(true, ""))
}

func TestEmptyBody(t *testing.T) {
	tests := []struct {
		body     string
		expected bool
	}{
		{body: `null`, expected: true},
		{body: `false`, expected: true},
		{body: `0`, expected: true},
		{body: `""`, expected: true},
		{body: `{}`, expected: false},
		{body: `[]`, expected: false},
		{body: `true`, expected: false},
		{body: `{"amount":0}`, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var decoded any
			require.NoError(t, json.Unmarshal([]byte(tt.body), &decoded))
			assert.Equal(t, tt.expected, empty(decoded))
		})
	}
}
