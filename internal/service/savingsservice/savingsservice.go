package savingsservice

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/ecopay/ecopay/internal/domain"
	"github.com/ecopay/ecopay/internal/dto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const deadlineLayout = "2006-01-02"

var (
	ErrInvalidName     = errors.New("savings goal name is required")
	ErrInvalidDeadline = errors.New("deadline must be a date in YYYY-MM-DD format")
)

//go:generate mockgen -source=savingsservice.go -destination=mock_savingsservice.go -package=savingsservice

type Repo interface {
	ListSavings(ctx context.Context, userID string) ([]domain.SavingsGoal, error)
	CreateSavings(ctx context.Context, userID string, goal domain.SavingsGoal) (*domain.SavingsGoal, error)
	AddToSavings(ctx context.Context, userID, savingsID string, amount decimal.Decimal) (*domain.SavingsGoal, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.SavingsGoal, error) {
	goals, err := s.repo.ListSavings(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list savings", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return goals, nil
}

func (s *Service) Create(ctx context.Context, userID string, req dto.SavingsRequestDTO) (*domain.SavingsGoal, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if !positive(req.Target) {
		return nil, domain.ErrInvalidAmount
	}
	if req.Due != "" {
		if _, err := time.Parse(deadlineLayout, req.Due); err != nil {
			return nil, ErrInvalidDeadline
		}
	}

	goal, err := s.repo.CreateSavings(ctx, userID, domain.SavingsGoal{
		Name:     name,
		Target:   req.Target,
		Deadline: req.Due,
	})
	if err != nil {
		zap.L().Error("can't create savings goal: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("savings goal created", zap.String("userID", userID), zap.String("goal", goal.ID))
	return goal, nil
}

func (s *Service) AddMoney(ctx context.Context, userID, savingsID string, amount float64) (*domain.SavingsGoal, error) {
	if !positive(amount) {
		return nil, domain.ErrInvalidAmount
	}

	goal, err := s.repo.AddToSavings(ctx, userID, savingsID, decimal.NewFromFloat(amount))
	if err != nil {
		zap.L().Error("can't add savings money: ", zap.String("goal", savingsID), zap.Error(err))
		return nil, err
	}
	return goal, nil
}

func positive(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount > 0
}
