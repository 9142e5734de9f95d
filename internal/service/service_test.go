package service

import (
	"testing"

	"github.com/ecopay/ecopay/internal/fixtures"
	"github.com/ecopay/ecopay/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := New(fixtures.New(), auth.NewMockJWTServiceInterface(ctrl))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.SavingsService)
	assert.NotNil(t, services.ProjectService)
}
