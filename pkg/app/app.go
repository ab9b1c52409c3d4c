// Package app wires the services of the ledger from their infrastructure
// dependencies.
package app

import (
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/metrics"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/pkg/service/health"
	"github.com/amirasaad/ledger/pkg/service/person"
)

// healthCheckTimeout bounds a single database ping.
const healthCheckTimeout = 2 * time.Second

// Deps holds all infrastructure dependencies for building the app and services.
type Deps struct {
	Uow     repository.UnitOfWork
	DB      health.Pinger
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AuthService    *auth.Service
	PersonService  *person.Service
	AccountService *account.Service
	HealthService  *health.Service
}

func New(deps *Deps, cfg *config.App) *App {
	var recorder account.Recorder
	if deps.Metrics != nil {
		recorder = deps.Metrics
	}
	return &App{
		Deps:           deps,
		Config:         cfg,
		AuthService:    auth.NewWithJWT(deps.Uow, cfg.Auth.Jwt, deps.Logger),
		PersonService:  person.New(deps.Uow, deps.Logger),
		AccountService: account.New(deps.Uow, recorder, deps.Logger),
		HealthService:  health.New(deps.DB, healthCheckTimeout, deps.Logger),
	}
}
