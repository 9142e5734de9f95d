// Package fixtures is the in-memory data set served by the proxy in mock mode.
package fixtures

import (
	"context"
	"strings"
	"sync"

	"github.com/ecopay/ecopay/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound            = domain.ErrNotFound
	ErrUserExists          = domain.ErrUserExists
	ErrInsufficientBalance = domain.ErrInsufficientBalance
)

// Account is a user together with its credentials. An empty PasswordHash
// accepts any password.
type Account struct {
	User         domain.User
	Balance      decimal.Decimal
	PasswordHash string
}

type Store struct {
	mu sync.RWMutex

	accounts     map[string]*Account
	emails       map[string]string
	transactions map[string][]domain.Transaction
	savings      map[string][]domain.SavingsGoal
	projects     []domain.CarbonProject
}

func New() *Store {
	return &Store{
		accounts:     make(map[string]*Account),
		emails:       make(map[string]string),
		transactions: make(map[string][]domain.Transaction),
		savings:      make(map[string][]domain.SavingsGoal),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindUserByEmail returns nil without an error when no account matches.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[normalizeEmail(email)]
	if !ok {
		return nil, nil
	}
	account := *s.accounts[id]
	return &account, nil
}

func (s *Store) FindUserByID(ctx context.Context, userID string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[userID]
	if !ok {
		return nil, ErrNotFound
	}
	found := *account
	return &found, nil
}

// CreateUser stores the account, assigning an ID when it has none.
func (s *Store) CreateUser(ctx context.Context, account *Account) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := normalizeEmail(account.User.Email)
	if _, ok := s.emails[email]; ok {
		return nil, ErrUserExists
	}

	created := *account
	if created.User.ID == "" {
		created.User.ID = uuid.NewString()
	}
	created.User.Balance = created.Balance.IntPart()
	s.accounts[created.User.ID] = &created
	s.emails[email] = created.User.ID

	result := created
	return &result, nil
}

// AdjustBalance adds delta to the user's balance. A change that would leave
// the balance negative fails with ErrInsufficientBalance and is not applied.
func (s *Store) AdjustBalance(ctx context.Context, userID string, delta decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[userID]
	if !ok {
		return decimal.Zero, ErrNotFound
	}
	balance := account.Balance.Add(delta)
	if balance.IsNegative() {
		return account.Balance, ErrInsufficientBalance
	}
	account.Balance = balance
	account.User.Balance = balance.IntPart()
	return balance, nil
}

func (s *Store) SetWallet(ctx context.Context, userID, address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[userID]
	if !ok {
		return ErrNotFound
	}
	account.User.WalletAddress = address
	return nil
}

// ListTransactions returns the newest transaction first.
func (s *Store) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.transactions[userID]
	result := make([]domain.Transaction, len(list))
	for i := range list {
		result[i] = list[len(list)-1-i]
	}
	return result, nil
}

func (s *Store) AddTransaction(ctx context.Context, userID string, tx domain.Transaction) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	s.transactions[userID] = append(s.transactions[userID], tx)
	return &tx, nil
}

func (s *Store) ListSavings(ctx context.Context, userID string) ([]domain.SavingsGoal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.SavingsGoal{}, s.savings[userID]...), nil
}

func (s *Store) CreateSavings(ctx context.Context, userID string, goal domain.SavingsGoal) (*domain.SavingsGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}
	s.savings[userID] = append(s.savings[userID], goal)
	return &goal, nil
}

func (s *Store) FindSavings(ctx context.Context, userID, savingsID string) (*domain.SavingsGoal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, goal := range s.savings[userID] {
		if goal.ID == savingsID {
			return &goal, nil
		}
	}
	return nil, ErrNotFound
}

// AddToSavings increases the saved amount of a goal.
func (s *Store) AddToSavings(ctx context.Context, userID, savingsID string, amount decimal.Decimal) (*domain.SavingsGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := s.savings[userID]
	for i := range goals {
		if goals[i].ID != savingsID {
			continue
		}
		current := decimal.NewFromFloat(goals[i].Current).Add(amount)
		goals[i].Current = current.InexactFloat64()
		goal := goals[i]
		return &goal, nil
	}
	return nil, ErrNotFound
}

func (s *Store) ListProjects(ctx context.Context) ([]domain.CarbonProject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.CarbonProject{}, s.projects...), nil
}

func (s *Store) CreateProject(ctx context.Context, project domain.CarbonProject) (*domain.CarbonProject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	s.projects = append(s.projects, project)
	return &project, nil
}

func (s *Store) FindProject(ctx context.Context, projectID string) (*domain.CarbonProject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, project := range s.projects {
		if project.ID == projectID {
			return &project, nil
		}
	}
	return nil, ErrNotFound
}
