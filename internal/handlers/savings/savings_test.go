package savings

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
	"github.com/ecopay/ecopay/internal/service/savingsservice"
	"github.com/ecopay/ecopay/pkg/auth"
	"github.com/ecopay/ecopay/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*SavingsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

var userCtx = context.WithValue(context.Background(), auth.UserIDKey, "1")

func TestGetSavingsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Wrapped list",
			prepareMock: func() {
				service.EXPECT().List(userCtx, "1").Return([]domain.SavingsGoal{
					{ID: "1", Name: "Emergency Fund", Target: 500000, Current: 320000, Deadline: "2024-12-31"},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"data":[{"id":"1","name":"Emergency Fund","target":500000,"current":320000,"deadline":"2024-12-31"}]}`,
		},
		{
			name: "No goals",
			prepareMock: func() {
				service.EXPECT().List(userCtx, "1").Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"data":[]}`,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().List(userCtx, "1").Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/savings", nil).WithContext(userCtx)
			w := httptest.NewRecorder()
			handler.GetSavings(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestCreateSavingsHandler(t *testing.T) {
	handler, service := NewMock(t)
	req := dto.SavingsRequestDTO{Name: "Laptop", Target: 400000, Due: "2025-01-01"}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Created",
			body: `{"name":"Laptop","target":400000,"due":"2025-01-01"}`,
			prepareMock: func() {
				service.EXPECT().Create(userCtx, "1", req).Return(&domain.SavingsGoal{ID: "s1", Name: "Laptop"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Validation failure",
			body: `{"target":400000}`,
			prepareMock: func() {
				service.EXPECT().Create(userCtx, "1", dto.SavingsRequestDTO{Target: 400000}).Return(nil, savingsservice.ErrInvalidName)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: savingsservice.ErrInvalidName.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `[`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Internal server error",
			body: `{"name":"Laptop","target":400000,"due":"2025-01-01"}`,
			prepareMock: func() {
				service.EXPECT().Create(userCtx, "1", req).Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/savings", bytes.NewReader([]byte(tt.body))).WithContext(userCtx)
			w := httptest.NewRecorder()
			handler.CreateSavings(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestAddSavingsHandler(t *testing.T) {
	handler, service := NewMock(t)

	router := chi.NewRouter()
	router.Put("/savings/{id}", func(w http.ResponseWriter, r *http.Request) {
		handler.AddSavings(w, r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, "1")))
	})

	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Added",
			id:   "s1",
			body: `{"amount":2500}`,
			prepareMock: func() {
				service.EXPECT().AddMoney(gomock.Any(), "1", "s1", 2500.0).Return(&domain.SavingsGoal{ID: "s1", Current: 2500}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown goal",
			id:   "missing",
			body: `{"amount":1}`,
			prepareMock: func() {
				service.EXPECT().AddMoney(gomock.Any(), "1", "missing", 1.0).Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Invalid amount",
			id:   "s1",
			body: `{"amount":0}`,
			prepareMock: func() {
				service.EXPECT().AddMoney(gomock.Any(), "1", "s1", 0.0).Return(nil, domain.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			id:           "s1",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			id:   "s1",
			body: `{"amount":1}`,
			prepareMock: func() {
				service.EXPECT().AddMoney(gomock.Any(), "1", "s1", 1.0).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPut, "/savings/"+tt.id, bytes.NewReader([]byte(tt.body)))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
