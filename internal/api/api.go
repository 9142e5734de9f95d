// Package api exposes one operation per EcoPay endpoint and reports every
// outcome as a Result.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"

	"github.com/ecopay/ecopay/internal/domain"
	"github.com/ecopay/ecopay/internal/dto"
	"github.com/ecopay/ecopay/internal/session"
	"go.uber.org/zap"
)

var ErrInvalidAmount = errors.New("amount must be a non-negative number")

//go:generate mockgen -source=api.go -destination=mock_api.go -package=api

type Transport interface {
	DoJSON(ctx context.Context, method, path string, body, out any) error
}

type Service struct {
	transport Transport
	session   session.Store
}

func New(transport Transport, store session.Store) *Service {
	return &Service{
		transport: transport,
		session:   store,
	}
}

func (s *Service) Register(ctx context.Context, req dto.RegisterRequestDTO) Result[domain.User] {
	return s.authenticate(ctx, "/auth/signup", req)
}

func (s *Service) Login(ctx context.Context, req dto.LoginRequestDTO) Result[domain.User] {
	return s.authenticate(ctx, "/auth/signin", req)
}

func (s *Service) authenticate(ctx context.Context, path string, req any) Result[domain.User] {
	var resp dto.AuthResponseDTO
	if err := s.transport.DoJSON(ctx, http.MethodPost, path, req, &resp); err != nil {
		zap.L().Error("authentication failed", zap.String("path", path), zap.Error(err))
		return fail[domain.User](err)
	}

	if resp.Token != "" {
		if err := s.session.SetToken(resp.Token); err != nil {
			return fail[domain.User](fmt.Errorf("can't save session: %w", err))
		}
	}

	var user domain.User
	if resp.User != nil {
		user = *resp.User
	}
	zap.L().Info("user successfully authenticated", zap.String("email", user.Email))
	return ok(user)
}

func (s *Service) Logout() error {
	return s.session.Clear()
}

func (s *Service) MakeTransaction(ctx context.Context, req dto.TransactionRequestDTO) Result[domain.Transaction] {
	if err := validateAmount(req.Amount); err != nil {
		return fail[domain.Transaction](err)
	}

	var tx domain.Transaction
	if err := s.transport.DoJSON(ctx, http.MethodPost, "/transactions", req, &tx); err != nil {
		zap.L().Error("failed to create transaction", zap.Error(err))
		return fail[domain.Transaction](err)
	}
	return ok(tx)
}

func (s *Service) GetTransactions(ctx context.Context) Result[[]domain.Transaction] {
	return getList[domain.Transaction](ctx, s.transport, "/transactions")
}

func (s *Service) AddUserBalance(ctx context.Context, amount float64) Result[dto.BalanceResponseDTO] {
	if err := validateAmount(amount); err != nil {
		return fail[dto.BalanceResponseDTO](err)
	}

	var resp dto.BalanceResponseDTO
	err := s.transport.DoJSON(ctx, http.MethodPost, "/users/balance", dto.BalanceRequestDTO{Amount: amount}, &resp)
	if err != nil {
		zap.L().Error("failed to add balance", zap.Error(err))
		return fail[dto.BalanceResponseDTO](err)
	}
	return ok(resp)
}

func (s *Service) GetUserProfile(ctx context.Context) Result[domain.User] {
	var user domain.User
	if err := s.transport.DoJSON(ctx, http.MethodGet, "/profile", nil, &user); err != nil {
		zap.L().Error("failed to fetch profile", zap.Error(err))
		return fail[domain.User](err)
	}
	return ok(user)
}

func (s *Service) CreateSavings(ctx context.Context, req dto.SavingsRequestDTO) Result[domain.SavingsGoal] {
	if err := validateAmount(req.Target); err != nil {
		return fail[domain.SavingsGoal](err)
	}

	var goal domain.SavingsGoal
	if err := s.transport.DoJSON(ctx, http.MethodPost, "/savings", req, &goal); err != nil {
		zap.L().Error("failed to create savings goal", zap.Error(err))
		return fail[domain.SavingsGoal](err)
	}
	return ok(goal)
}

func (s *Service) GetSavings(ctx context.Context) Result[[]domain.SavingsGoal] {
	return getList[domain.SavingsGoal](ctx, s.transport, "/savings")
}

func (s *Service) AddSavingsMoney(ctx context.Context, savingsID string, amount float64) Result[domain.SavingsGoal] {
	if err := validateAmount(amount); err != nil {
		return fail[domain.SavingsGoal](err)
	}

	var goal domain.SavingsGoal
	path := "/savings/" + url.PathEscape(savingsID)
	if err := s.transport.DoJSON(ctx, http.MethodPut, path, dto.AddSavingsRequestDTO{Amount: amount}, &goal); err != nil {
		zap.L().Error("failed to add savings money", zap.String("savingsID", savingsID), zap.Error(err))
		return fail[domain.SavingsGoal](err)
	}
	return ok(goal)
}

func (s *Service) ConnectWallet(ctx context.Context, address string) Result[dto.WalletResponseDTO] {
	var resp dto.WalletResponseDTO
	if err := s.transport.DoJSON(ctx, http.MethodPost, "/auth/wallet", dto.WalletRequestDTO{Address: address}, &resp); err != nil {
		zap.L().Error("failed to connect wallet", zap.Error(err))
		return fail[dto.WalletResponseDTO](err)
	}
	return ok(resp)
}

func (s *Service) CreateProject(ctx context.Context, req dto.ProjectRequestDTO) Result[domain.CarbonProject] {
	var project domain.CarbonProject
	if err := s.transport.DoJSON(ctx, http.MethodPost, "/projects", req, &project); err != nil {
		zap.L().Error("failed to create project", zap.Error(err))
		return fail[domain.CarbonProject](err)
	}
	return ok(project)
}

// OffsetProject funds a project. It shares the POST /projects endpoint with
// CreateProject; the body shape tells them apart.
func (s *Service) OffsetProject(ctx context.Context, req dto.OffsetRequestDTO) Result[dto.OffsetResponseDTO] {
	if err := validateAmount(req.Amount); err != nil {
		return fail[dto.OffsetResponseDTO](err)
	}

	var resp dto.OffsetResponseDTO
	if err := s.transport.DoJSON(ctx, http.MethodPost, "/projects", req, &resp); err != nil {
		zap.L().Error("failed to offset project", zap.String("projectID", req.ProjectID), zap.Error(err))
		return fail[dto.OffsetResponseDTO](err)
	}
	return ok(resp)
}

func (s *Service) GetAllProjects(ctx context.Context) Result[[]domain.CarbonProject] {
	return getList[domain.CarbonProject](ctx, s.transport, "/projects")
}

func getList[T any](ctx context.Context, transport Transport, path string) Result[[]T] {
	var raw json.RawMessage
	if err := transport.DoJSON(ctx, http.MethodGet, path, nil, &raw); err != nil {
		zap.L().Error("failed to fetch list", zap.String("path", path), zap.Error(err))
		return fail[[]T](err)
	}
	return ok(UnwrapList[T](raw))
}

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return ErrInvalidAmount
	}
	return nil
}
