package walletservice

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/ecopay/ecopay/internal/carbon"
	"github.com/ecopay/ecopay/internal/domain"
	"github.com/ecopay/ecopay/internal/dto"
	"github.com/ecopay/ecopay/internal/fixtures"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidRecipient = errors.New("recipient is required")
	ErrInvalidAddress   = errors.New("wallet address is required")
)

//go:generate mockgen -source=walletservice.go -destination=mock_walletservice.go -package=walletservice

type Repo interface {
	FindUserByID(ctx context.Context, userID string) (*fixtures.Account, error)
	AdjustBalance(ctx context.Context, userID string, delta decimal.Decimal) (decimal.Decimal, error)
	SetWallet(ctx context.Context, userID, address string) error
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
	AddTransaction(ctx context.Context, userID string, tx domain.Transaction) (*domain.Transaction, error)
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	account, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get profile", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return &account.User, nil
}

// TopUp credits the balance and returns the new balance.
func (s *Service) TopUp(ctx context.Context, userID string, amount float64) (float64, error) {
	if !positive(amount) {
		return 0, domain.ErrInvalidAmount
	}

	balance, err := s.repo.AdjustBalance(ctx, userID, decimal.NewFromFloat(amount))
	if err != nil {
		zap.L().Error("failed to top up balance", zap.String("userID", userID), zap.Error(err))
		return 0, err
	}
	zap.L().Info("balance topped up", zap.String("userID", userID), zap.Float64("amount", amount))
	return balance.InexactFloat64(), nil
}

func (s *Service) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txs, err := s.repo.ListTransactions(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return txs, nil
}

// Transfer debits the sender and records a sent transaction. A missing
// carbon footprint is estimated from the amount and category.
func (s *Service) Transfer(ctx context.Context, userID string, req dto.TransactionRequestDTO) (*domain.Transaction, error) {
	recipient := strings.TrimSpace(req.RecipientID)
	if recipient == "" {
		return nil, ErrInvalidRecipient
	}
	if !positive(req.Amount) {
		return nil, domain.ErrInvalidAmount
	}

	if _, err := s.repo.AdjustBalance(ctx, userID, decimal.NewFromFloat(req.Amount).Neg()); err != nil {
		zap.L().Info("transfer rejected", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	category := carbon.Lookup(req.Category).Value
	footprint := req.CarbonFootprint
	if footprint == nil {
		if estimate, ok := carbon.Compute(req.Amount, category); ok {
			footprint = &estimate.CO2Emission
		}
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = "Transfer to " + recipient
	}

	tx, err := s.repo.AddTransaction(ctx, userID, domain.Transaction{
		Type:            domain.TransactionSent,
		Description:     description,
		Amount:          req.Amount,
		Time:            s.now().UTC().Format(time.RFC3339),
		CarbonFootprint: footprint,
		Category:        category,
	})
	if err != nil {
		zap.L().Error("failed to record transaction", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("transfer recorded", zap.String("userID", userID), zap.String("recipient", recipient), zap.Float64("amount", req.Amount))
	return tx, nil
}

func (s *Service) ConnectWallet(ctx context.Context, userID, address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrInvalidAddress
	}
	if err := s.repo.SetWallet(ctx, userID, address); err != nil {
		zap.L().Error("failed to connect wallet", zap.String("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

func positive(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount > 0
}
