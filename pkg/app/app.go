package app

import (
	"log/slog"

	"github.com/amirasaad/accounts/pkg/config"
	repo "github.com/amirasaad/accounts/pkg/repository/account"
	"github.com/amirasaad/accounts/pkg/service/account"
	"gorm.io/gorm"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	DB                *gorm.DB
	AccountRepository repo.Repository
	Logger            *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AccountService *account.Service
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:           deps,
		Config:         cfg,
		AccountService: account.New(deps.AccountRepository, deps.Logger),
	}
}
