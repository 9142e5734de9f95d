package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecopay/ecopay/internal/domain"
	"github.com/ecopay/ecopay/internal/fixtures"
	"github.com/ecopay/ecopay/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		fullName      string
		email         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful registration",
			fullName: " Ada Obi ",
			email:    "ada@ecopay.app",
			password: "secret",
			prepareMock: func() {
				userRepo.EXPECT().FindUserByEmail(context.Background(), "ada@ecopay.app").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("secret").Return("hashed", nil)
				userRepo.EXPECT().CreateUser(context.Background(), &fixtures.Account{
					User:         domain.User{Name: "Ada Obi", Email: "ada@ecopay.app"},
					PasswordHash: "hashed",
				}).DoAndReturn(func(ctx context.Context, account *fixtures.Account) (*fixtures.Account, error) {
					created := *account
					created.User.ID = "u-1"
					return &created, nil
				})
			},
			expectedUser: &domain.User{ID: "u-1", Name: "Ada Obi", Email: "ada@ecopay.app"},
		},
		{
			name:     "User already exists",
			fullName: "Test User",
			email:    "test@example.com",
			password: "secret",
			prepareMock: func() {
				userRepo.EXPECT().FindUserByEmail(context.Background(), "test@example.com").
					Return(&fixtures.Account{User: domain.User{ID: "1"}}, nil)
			},
			expectedError: domain.ErrUserExists,
		},
		{
			name:     "Hash failure",
			fullName: "Ada",
			email:    "ada@ecopay.app",
			password: "secret",
			prepareMock: func() {
				userRepo.EXPECT().FindUserByEmail(context.Background(), "ada@ecopay.app").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("secret").Return("", auth.ErrEmptyPassword)
			},
			expectedError: auth.ErrEmptyPassword,
		},
		{
			name:     "Create race",
			fullName: "Ada",
			email:    "ada@ecopay.app",
			password: "secret",
			prepareMock: func() {
				userRepo.EXPECT().FindUserByEmail(context.Background(), "ada@ecopay.app").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("secret").Return("hashed", nil)
				userRepo.EXPECT().CreateUser(context.Background(), gomock.Any()).Return(nil, domain.ErrUserExists)
			},
			expectedError: domain.ErrUserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Register(context.Background(), tt.fullName, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.expectedError)
			assert.Equal(t, tt.expectedUser, user)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)
	registered := &fixtures.Account{
		User:         domain.User{ID: "u-1", Email: "ada@ecopay.app"},
		PasswordHash: "hashed",
	}

	tests := []struct {
		name          string
		email         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Registered user",
			email:    "ada@ecopay.app",
			password: "secret",
			prepareMock: func() {
				userRepo.EXPECT().FindUserByEmail(context.Background(), "ada@ecopay.app").Return(registered, nil)
				passwordHasher.EXPECT().ComparePassword("hashed", "secret").Return(true)
			},
			expectedUser: &registered.User,
		},
		{
			name:     "Wrong password",
			email:    "ada@ecopay.app",
			password: "wrong",
			prepareMock: func() {
				userRepo.EXPECT().FindUserByEmail(context.Background(), "ada@ecopay.app").Return(registered, nil)
				passwordHasher.EXPECT().ComparePassword("hashed", "wrong").Return(false)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Seeded account accepts any password",
			email:    "test@example.com",
			password: "anything",
			prepareMock: func() {
				userRepo.EXPECT().FindUserByEmail(context.Background(), "test@example.com").
					Return(&fixtures.Account{User: domain.User{ID: "1", Name: "Test User"}}, nil)
			},
			expectedUser: &domain.User{ID: "1", Name: "Test User"},
		},
		{
			name:     "Unknown user",
			email:    "nobody@ecopay.app",
			password: "secret",
			prepareMock: func() {
				userRepo.EXPECT().FindUserByEmail(context.Background(), "nobody@ecopay.app").Return(nil, nil)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Repository failure",
			email:    "ada@ecopay.app",
			password: "secret",
			prepareMock: func() {
				userRepo.EXPECT().FindUserByEmail(context.Background(), "ada@ecopay.app").Return(nil, errors.New("boom"))
			},
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Authenticate(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, tt.expectedError)
			assert.Equal(t, tt.expectedUser, user)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	tests := []struct {
		name          string
		user          *domain.User
		prepareMock   func()
		expectedToken string
		expectError   bool
	}{
		{
			name: "Token issued for a day",
			user: &domain.User{ID: "1", Email: "test@example.com"},
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("1", "test@example.com", now.Add(24*time.Hour)).Return("token", nil)
			},
			expectedToken: "token",
		},
		{
			name:        "Missing user",
			user:        nil,
			prepareMock: func() {},
			expectError: true,
		},
		{
			name: "Signing failure",
			user: &domain.User{ID: "1"},
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("1", "", gomock.Any()).Return("", errors.New("sign"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			token, err := service.GenerateToken(tt.user)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedToken, token)
		})
	}
}
