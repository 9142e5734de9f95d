package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecopay/ecopay/internal/domain"
	"github.com/ecopay/ecopay/internal/dto"
	"github.com/ecopay/ecopay/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)
	user := &domain.User{ID: "u-1", Name: "Ada Obi", Email: "ada@ecopay.app"}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"fullName":"Ada Obi","email":"ada@ecopay.app","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "Ada Obi", "ada@ecopay.app", "secret").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Missing full name",
			body:          `{"email":"ada@ecopay.app","password":"secret"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid registration data",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid registration data",
		},
		{
			name: "User already exists",
			body: `{"fullName":"Test","email":"test@example.com","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "Test", "test@example.com", "secret").Return(nil, domain.ErrUserExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "User already exists",
		},
		{
			name: "Unexpected failure",
			body: `{"fullName":"Test","email":"test@example.com","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "Test", "test@example.com", "secret").Return(nil, errors.New("boom"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name: "Error generating token",
			body: `{"fullName":"Ada Obi","email":"ada@ecopay.app","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "Ada Obi", "ada@ecopay.app", "secret").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/proxy-api/auth/signup", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.False(t, resp.Success)
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp dto.AuthResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.True(t, resp.Success)
			assert.Equal(t, "some-jwt-token", resp.Token)
			assert.Equal(t, user, resp.User)
			assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	user := &domain.User{ID: "1", Name: "Test User", Email: "test@example.com", Balance: 1000}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"email":"test@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "test@example.com", "password123").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Missing password",
			body:          `{"email":"test@example.com"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Invalid credentials",
			body: `{"email":"test@example.com","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "test@example.com", "wrongpassword").Return(nil, domain.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"email":"test@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "test@example.com", "password123").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/proxy-api/auth/signin", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp dto.AuthResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, dto.AuthResponseDTO{Success: true, User: user, Token: "some-jwt-token"}, resp)
		})
	}
}
