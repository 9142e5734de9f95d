package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ecopay/ecopay/pkg/clients"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Server message wins",
			err:      &clients.ResponseError{StatusCode: http.StatusBadRequest, Message: "Invalid registration data"},
			expected: "Invalid registration data",
		},
		{
			name:     "Wrapped server message",
			err:      fmt.Errorf("signup: %w", &clients.ResponseError{StatusCode: http.StatusConflict, Message: "X"}),
			expected: "X",
		},
		{
			name:     "Transport message without server message",
			err:      &clients.ResponseError{StatusCode: http.StatusBadGateway},
			expected: "Request failed with status code 502",
		},
		{
			name:     "Plain transport error",
			err:      errors.New("Y"),
			expected: "Y",
		},
		{
			name:     "Opaque failure",
			err:      errors.New(""),
			expected: UnexpectedErrorMessage,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: UnexpectedErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeError(tt.err))
		})
	}
}

func TestResult_ExactlyOneOf(t *testing.T) {
	success := ok([]int{1})
	assert.True(t, success.Success)
	assert.Empty(t, success.Error)
	assert.NoError(t, success.Err())

	failure := fail[[]int](errors.New("boom"))
	assert.False(t, failure.Success)
	assert.Nil(t, failure.Data)
	assert.Equal(t, "boom", failure.Error)
	assert.EqualError(t, failure.Err(), "boom")
}
