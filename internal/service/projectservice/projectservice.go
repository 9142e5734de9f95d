package projectservice

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

var (
	ErrInvalidName     = errors.New("project name is required")
	ErrInvalidProject  = errors.New("project id is required")
	ErrInvalidCurrency = errors.New("currency must be cUSD or cEUR")
	ErrProjectClosed   = errors.New("project is no longer accepting offsets")
)

//go:generate mockgen -source=projectservice.go -destination=mock_projectservice.go -package=projectservice

type Repo interface {
	ListProjects(ctx context.Context) ([]domain.CarbonProject, error)
	CreateProject(ctx context.Context, project domain.CarbonProject) (*domain.CarbonProject, error)
	FindProject(ctx context.Context, projectID string) (*domain.CarbonProject, error)
}

type LedgerRepo interface {
	AdjustBalance(ctx context.Context, userID string, delta decimal.Decimal) (decimal.Decimal, error)
	AddTransaction(ctx context.Context, userID string, tx domain.Transaction) (*domain.Transaction, error)
}

type Service struct {
	repo   Repo
	ledger LedgerRepo
	now    func() time.Time
}

func New(repo Repo, ledger LedgerRepo) *Service {
	return &Service{
		repo:   repo,
		ledger: ledger,
		now:    time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.CarbonProject, error) {
	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		zap.L().Error("failed to list projects", zap.Error(err))
		return nil, err
	}
	return projects, nil
}

func (s *Service) Create(ctx context.Context, req dto.ProjectRequestDTO) (*domain.CarbonProject, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	project, err := s.repo.CreateProject(ctx, domain.CarbonProject{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Impact:      strings.TrimSpace(req.Impact),
		Status:      domain.ProjectActive,
	})
	if err != nil {
		zap.L().Error("can't create project: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("project created", zap.String("project", project.ID))
	return project, nil
}

// Offset funds an active project from the user's balance and records the
// payment as an offset transaction.
func (s *Service) Offset(ctx context.Context, userID string, req dto.OffsetRequestDTO) (*dto.OffsetResponseDTO, error) {
	if strings.TrimSpace(req.ProjectID) == "" {
		return nil, ErrInvalidProject
	}
	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) || req.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	switch req.Currency {
	case "", dto.CurrencyCUSD, dto.CurrencyCEUR:
	default:
		return nil, ErrInvalidCurrency
	}

	project, err := s.repo.FindProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.Status == domain.ProjectCompleted {
		return nil, ErrProjectClosed
	}

	if _, err := s.ledger.AdjustBalance(ctx, userID, decimal.NewFromFloat(req.Amount).Neg()); err != nil {
		zap.L().Info("offset rejected", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	tx, err := s.ledger.AddTransaction(ctx, userID, domain.Transaction{
		Type:            domain.TransactionOffset,
		Description:     "Carbon offset - " + project.Name,
		Amount:          req.Amount,
		Time:            s.now().UTC().Format(time.RFC3339),
		CarbonFootprint: req.CO2Offset,
	})
	if err != nil {
		zap.L().Error("failed to record offset", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("project offset", zap.String("userID", userID), zap.String("project", project.ID), zap.Float64("amount", req.Amount))
	return &dto.OffsetResponseDTO{OffsetID: tx.ID}, nil
}
