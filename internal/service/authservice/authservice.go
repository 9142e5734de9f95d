package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ecopay/ecopay/internal/domain"
	"github.com/ecopay/ecopay/internal/fixtures"
	"github.com/ecopay/ecopay/pkg/auth"
	"go.uber.org/zap"
)

const tokenTTL = 24 * time.Hour

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

type Repo interface {
	FindUserByEmail(ctx context.Context, email string) (*fixtures.Account, error)
	CreateUser(ctx context.Context, account *fixtures.Account) (*fixtures.Account, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	now         func() time.Time
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		now:         time.Now,
	}
}

// Register creates an account with a zero balance.
func (s *Service) Register(ctx context.Context, fullName, email, password string) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, domain.ErrUserExists
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	account, err := s.userRepo.CreateUser(ctx, &fixtures.Account{
		User: domain.User{
			Name:  strings.TrimSpace(fullName),
			Email: strings.TrimSpace(email),
		},
		PasswordHash: hashedPassword,
	})
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return &account.User, nil
}

// Authenticate checks the password of a known account. Seeded accounts
// without a password hash accept any non-empty password.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	account, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil || account == nil {
		zap.L().Info("invalid credentials", zap.String("email", email), zap.Error(err))
		return nil, domain.ErrInvalidCredentials
	}
	if account.PasswordHash != "" && !s.hashService.ComparePassword(account.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, domain.ErrInvalidCredentials
	}

	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return &account.User, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	if user == nil || user.ID == "" {
		return "", errors.New("user has no id")
	}

	token, err := s.jwtService.GenerateJWT(user.ID, user.Email, s.now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
