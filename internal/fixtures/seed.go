package fixtures

import (
	"context"

	"github.com/ecopay/ecopay/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	TestUserID  = "1"
	DemoUserID  = "demo"
	DemoEmail   = "demo@ecopay.app"
	DemoWallet  = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"
	TestEmail   = "test@example.com"
	testWallet  = "0x123..."
	transferFee = 5
)

// Seeded returns a store holding the development data set: the test and demo
// accounts, two transactions and one savings goal each, and one project.
func Seeded() *Store {
	s := New()
	ctx := context.Background()

	accounts := []Account{
		{
			User:    domain.User{ID: TestUserID, Name: "Test User", Email: TestEmail, WalletAddress: testWallet},
			Balance: decimal.NewFromInt(1000),
		},
		{
			User:    domain.User{ID: DemoUserID, Name: "Demo User", Email: DemoEmail, WalletAddress: DemoWallet},
			Balance: decimal.NewFromInt(50000),
		},
	}

	fee := float64(transferFee)
	for _, account := range accounts {
		s.CreateUser(ctx, &account)

		s.AddTransaction(ctx, account.User.ID, domain.Transaction{
			ID:          "2",
			Type:        domain.TransactionReceived,
			Description: "Payment from EcoShop",
			Amount:      8500,
			Time:        "1 day ago",
		})
		s.AddTransaction(ctx, account.User.ID, domain.Transaction{
			ID:          "1",
			Type:        domain.TransactionSent,
			Description: "Transfer to John Doe",
			Amount:      15000,
			Time:        "2 hours ago",
			Fee:         &fee,
		})
		s.CreateSavings(ctx, account.User.ID, domain.SavingsGoal{
			ID:       "1",
			Name:     "Emergency Fund",
			Target:   500000,
			Current:  320000,
			Deadline: "2024-12-31",
		})
	}

	s.CreateProject(ctx, domain.CarbonProject{
		ID:          "1",
		Name:        "Reforestation Project",
		Description: "Planting trees in Amazon",
		Impact:      "Reduces CO2 by 100kg per tree",
		Status:      domain.ProjectActive,
	})

	return s
}
