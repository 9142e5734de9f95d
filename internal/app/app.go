package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ecopay/ecopay/internal/config"
	"github.com/ecopay/ecopay/internal/fixtures"
	"github.com/ecopay/ecopay/internal/handlers"
	"github.com/ecopay/ecopay/internal/relay"
	"github.com/ecopay/ecopay/internal/service"
	"github.com/ecopay/ecopay/pkg/auth"
	"github.com/ecopay/ecopay/pkg/clients"
	"github.com/ecopay/ecopay/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

// Application runs the proxy: a relay to the upstream API, or the fixture
// API when mock mode is on.
type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	store *fixtures.Store

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	if a.cfg == nil {
		a.cfg = config.New()
	}

	err := logger.InitLogger(a.cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	a.build()

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully",
		zap.Bool("mockMode", a.cfg.MockMode),
		zap.String("upstream", a.cfg.UpstreamURL),
	)
	return nil
}

func (a *Application) build() {
	jwtService := auth.NewJWTService(a.cfg.JWTSecret)
	upstream := relay.New(a.cfg.UpstreamURL, clients.NewHTTPClient(clients.WithTimeout(a.cfg.RequestTimeout)))
	origin := relay.AllowedOrigin(a.cfg.IsProduction(), a.cfg.CORSOrigin)

	a.store = fixtures.Seeded()
	a.srv = service.New(a.store, jwtService)
	a.api = handlers.New(a.srv, upstream, jwtService, origin, a.cfg.MockMode)
}

func (a *Application) router() http.Handler {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	return router
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           a.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
