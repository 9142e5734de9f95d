package service

import (
	"github.com/ecopay/ecopay/internal/fixtures"
	"github.com/ecopay/ecopay/internal/handlers/auth"
	"github.com/ecopay/ecopay/internal/handlers/projects"
	"github.com/ecopay/ecopay/internal/handlers/savings"
	"github.com/ecopay/ecopay/internal/handlers/wallet"

	pkgauth "github.com/ecopay/ecopay/pkg/auth"

	authservice "github.com/ecopay/ecopay/internal/service/authservice"
	projectservice "github.com/ecopay/ecopay/internal/service/projectservice"
	savingsservice "github.com/ecopay/ecopay/internal/service/savingsservice"
	walletservice "github.com/ecopay/ecopay/internal/service/walletservice"
)

type Services struct {
	AuthService    auth.Service
	WalletService  wallet.Service
	SavingsService savings.Service
	ProjectService projects.Service
}

func New(store *fixtures.Store, jwtService pkgauth.JWTServiceInterface) *Services {
	return &Services{
		AuthService:    authservice.New(store, pkgauth.NewHashService(0), jwtService),
		WalletService:  walletservice.New(store),
		SavingsService: savingsservice.New(store),
		ProjectService: projectservice.New(store, store),
	}
}
