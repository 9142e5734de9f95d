package fixtures

import (
	"context"
	"sync"
	"testing"

	"github.com/ecopay/ecopay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeded(t *testing.T) {
	s := Seeded()
	ctx := context.Background()

	account, err := s.FindUserByEmail(ctx, "Test@Example.com ")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, domain.User{ID: "1", Name: "Test User", Email: TestEmail, Balance: 1000, WalletAddress: "0x123..."}, account.User)

	demo, err := s.FindUserByID(ctx, DemoUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), demo.User.Balance)
	assert.Equal(t, DemoWallet, demo.User.WalletAddress)

	txs, err := s.ListTransactions(ctx, TestUserID)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "1", txs[0].ID)
	assert.Equal(t, 5.0, *txs[0].Fee)
	assert.Equal(t, domain.TransactionReceived, txs[1].Type)
	assert.Nil(t, txs[1].Fee)

	goals, err := s.ListSavings(ctx, TestUserID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, 0.64, goals[0].Progress())

	projects, err := s.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, domain.ProjectActive, projects[0].Status)
}

func TestCreateUser(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, &Account{User: domain.User{Name: "Ada", Email: "ada@ecopay.app"}, PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.User.ID)

	_, err = s.CreateUser(ctx, &Account{User: domain.User{Email: "ADA@ecopay.app"}})
	assert.ErrorIs(t, err, ErrUserExists)

	found, err := s.FindUserByEmail(ctx, "ada@ecopay.app")
	require.NoError(t, err)
	assert.Equal(t, "hash", found.PasswordHash)

	missing, err := s.FindUserByEmail(ctx, "nobody@ecopay.app")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	_, err = s.FindUserByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdjustBalance(t *testing.T) {
	s := Seeded()
	ctx := context.Background()

	tests := []struct {
		name            string
		userID          string
		delta           decimal.Decimal
		expectedBalance string
		expectedErr     error
	}{
		{name: "Top up", userID: TestUserID, delta: decimal.NewFromInt(500), expectedBalance: "1500"},
		{name: "Debit", userID: TestUserID, delta: decimal.NewFromFloat(-499.5), expectedBalance: "1000.5"},
		{name: "Overdraft", userID: TestUserID, delta: decimal.NewFromInt(-2000), expectedBalance: "1000.5", expectedErr: ErrInsufficientBalance},
		{name: "Unknown user", userID: "nope", delta: decimal.NewFromInt(1), expectedBalance: "0", expectedErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance, err := s.AdjustBalance(ctx, tt.userID, tt.delta)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedBalance, balance.String())
		})
	}

	account, _ := s.FindUserByID(ctx, TestUserID)
	assert.Equal(t, int64(1000), account.User.Balance)
}

func TestAdjustBalance_Concurrent(t *testing.T) {
	s := Seeded()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AdjustBalance(ctx, TestUserID, decimal.NewFromInt(-20))
		}()
	}
	wg.Wait()

	account, err := s.FindUserByID(ctx, TestUserID)
	require.NoError(t, err)
	assert.Equal(t, "0", account.Balance.String(), "exactly fifty debits fit into the balance")
}

func TestSavings(t *testing.T) {
	s := Seeded()
	ctx := context.Background()

	goal, err := s.CreateSavings(ctx, TestUserID, domain.SavingsGoal{Name: "Laptop", Target: 400000, Deadline: "2025-01-01"})
	require.NoError(t, err)
	assert.NotEmpty(t, goal.ID)

	updated, err := s.AddToSavings(ctx, TestUserID, goal.ID, decimal.NewFromFloat(0.1))
	require.NoError(t, err)
	updated, err = s.AddToSavings(ctx, TestUserID, goal.ID, decimal.NewFromFloat(0.2))
	require.NoError(t, err)
	assert.Equal(t, 0.3, updated.Current)

	found, err := s.FindSavings(ctx, TestUserID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.3, found.Current)

	_, err = s.AddToSavings(ctx, DemoUserID, goal.ID, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrNotFound, "goals are scoped to their owner")
	_, err = s.FindSavings(ctx, TestUserID, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransactionsAndProjects(t *testing.T) {
	s := New()
	ctx := context.Background()

	first, err := s.AddTransaction(ctx, "u", domain.Transaction{Description: "first"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	_, err = s.AddTransaction(ctx, "u", domain.Transaction{Description: "second"})
	require.NoError(t, err)

	txs, err := s.ListTransactions(ctx, "u")
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "second", txs[0].Description)

	empty, err := s.ListTransactions(ctx, "other")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	project, err := s.CreateProject(ctx, domain.CarbonProject{Name: "Solar"})
	require.NoError(t, err)
	found, err := s.FindProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Solar", found.Name)

	_, err = s.FindProject(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.SetWallet(ctx, "missing-user", "0x1"), ErrNotFound)
}
