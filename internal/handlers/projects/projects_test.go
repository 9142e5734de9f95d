package projects

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecopay/ecopay/internal/domain"
	"github.com/ecopay/ecopay/internal/dto"
	"github.com/ecopay/ecopay/internal/service/projectservice"
	"github.com/ecopay/ecopay/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ProjectHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

var userCtx = context.WithValue(context.Background(), auth.UserIDKey, "1")

func TestGetProjectsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().List(userCtx).Return([]domain.CarbonProject{{
		ID:          "1",
		Name:        "Reforestation Project",
		Description: "Planting trees in Amazon",
		Impact:      "Reduces CO2 by 100kg per tree",
		Status:      domain.ProjectActive,
	}}, nil)

	w := httptest.NewRecorder()
	handler.GetProjects(w, httptest.NewRequest(http.MethodGet, "/projects", nil).WithContext(userCtx))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[{"id":"1","name":"Reforestation Project","description":"Planting trees in Amazon","impact":"Reduces CO2 by 100kg per tree","status":"active"}]}`, w.Body.String())

	service.EXPECT().List(userCtx).Return(nil, errors.New("error"))
	w = httptest.NewRecorder()
	handler.GetProjects(w, httptest.NewRequest(http.MethodGet, "/projects", nil).WithContext(userCtx))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPostProjectHandler(t *testing.T) {
	handler, service := NewMock(t)
	co2 := 12.5

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Create project",
			body: `{"name":"Solar","description":"Panels","impact":"1t"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(userCtx, dto.ProjectRequestDTO{Name: "Solar", Description: "Panels", Impact: "1t"}).
					Return(&domain.CarbonProject{ID: "p1", Name: "Solar", Status: domain.ProjectActive}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":"p1","name":"Solar","description":"","impact":"","status":"active"}`,
		},
		{
			name: "Create without name",
			body: `{"description":"Panels"}`,
			prepareMock: func() {
				service.EXPECT().Create(userCtx, dto.ProjectRequestDTO{Description: "Panels"}).Return(nil, projectservice.ErrInvalidName)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Offset project",
			body: `{"projectId":"1","amount":500,"currency":"cUSD","co2Offset":12.5}`,
			prepareMock: func() {
				service.EXPECT().
					Offset(userCtx, "1", dto.OffsetRequestDTO{ProjectID: "1", Amount: 500, Currency: dto.CurrencyCUSD, CO2Offset: &co2}).
					Return(&dto.OffsetResponseDTO{OffsetID: "off-1"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"offsetId":"off-1"}`,
		},
		{
			name: "Offset unknown project",
			body: `{"projectId":"9","amount":5}`,
			prepareMock: func() {
				service.EXPECT().Offset(userCtx, "1", gomock.Any()).Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Offset closed project",
			body: `{"projectId":"2","amount":5}`,
			prepareMock: func() {
				service.EXPECT().Offset(userCtx, "1", gomock.Any()).Return(nil, projectservice.ErrProjectClosed)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Offset over balance",
			body: `{"projectId":"1","amount":5000}`,
			prepareMock: func() {
				service.EXPECT().Offset(userCtx, "1", gomock.Any()).Return(nil, domain.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Offset bad currency",
			body: `{"projectId":"1","amount":5,"currency":"BTC"}`,
			prepareMock: func() {
				service.EXPECT().Offset(userCtx, "1", gomock.Any()).Return(nil, projectservice.ErrInvalidCurrency)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			body:         `{"projectId":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewReader([]byte(tt.body))).WithContext(userCtx)
			w := httptest.NewRecorder()
			handler.PostProject(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
