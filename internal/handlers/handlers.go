package handlers

import (
	"net/http"

	_ "github.com/ecopay/ecopay/docs"
	authhandlers "github.com/ecopay/ecopay/internal/handlers/auth"
	projecthandlers "github.com/ecopay/ecopay/internal/handlers/projects"
	savingshandlers "github.com/ecopay/ecopay/internal/handlers/savings"
	wallethandlers "github.com/ecopay/ecopay/internal/handlers/wallet"
	"github.com/ecopay/ecopay/internal/relay"
	"github.com/ecopay/ecopay/internal/service"
	"github.com/ecopay/ecopay/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

// apiPrefixes are the mount points of the API; both reach the same routes.
var apiPrefixes = []string{"/proxy-api", "/api"}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	TopUp(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	CreateTransaction(w http.ResponseWriter, r *http.Request)
	ConnectWallet(w http.ResponseWriter, r *http.Request)
}

type SavingsHandler interface {
	GetSavings(w http.ResponseWriter, r *http.Request)
	CreateSavings(w http.ResponseWriter, r *http.Request)
	AddSavings(w http.ResponseWriter, r *http.Request)
}

type ProjectHandler interface {
	GetProjects(w http.ResponseWriter, r *http.Request)
	PostProject(w http.ResponseWriter, r *http.Request)
}

// Handlers serves the API either by relaying to the upstream (Relay) or,
// in mock mode, from the local fixture handlers.
type Handlers struct {
	AuthHandler    AuthHandler
	WalletHandler  WalletHandler
	SavingsHandler SavingsHandler
	ProjectHandler ProjectHandler

	Relay      http.Handler
	JWT        auth.JWTServiceInterface
	CORSOrigin string
	MockMode   bool
}

func New(s *service.Services, upstream http.Handler, jwtService auth.JWTServiceInterface, corsOrigin string, mockMode bool) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		WalletHandler:  wallethandlers.New(s.WalletService),
		SavingsHandler: savingshandlers.New(s.SavingsService),
		ProjectHandler: projecthandlers.New(s.ProjectService),
		Relay:          upstream,
		JWT:            jwtService,
		CORSOrigin:     corsOrigin,
		MockMode:       mockMode,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		relay.CORS(h.CORSOrigin),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	for _, prefix := range apiPrefixes {
		if h.MockMode {
			r.Route(prefix, h.fixtureRoutes)
			continue
		}
		r.Handle(prefix+"/*", h.Relay)
	}

	return r
}

func (h *Handlers) fixtureRoutes(r chi.Router) {
	r.Post("/auth/signup", h.AuthHandler.Register)
	r.Post("/auth/signin", h.AuthHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(h.JWT))

		r.Post("/auth/wallet", h.WalletHandler.ConnectWallet)
		r.Get("/profile", h.WalletHandler.GetProfile)
		r.Post("/users/balance", h.WalletHandler.TopUp)
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", h.WalletHandler.GetTransactions)
			r.Post("/", h.WalletHandler.CreateTransaction)
		})
		r.Route("/savings", func(r chi.Router) {
			r.Get("/", h.SavingsHandler.GetSavings)
			r.Post("/", h.SavingsHandler.CreateSavings)
			r.Put("/{id}", h.SavingsHandler.AddSavings)
		})
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.ProjectHandler.GetProjects)
			r.Post("/", h.ProjectHandler.PostProject)
		})
	})
}
