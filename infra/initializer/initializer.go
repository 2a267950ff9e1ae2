package initializer

import (
	"fmt"
	"os"

	"github.com/amirasaad/accounts/infra"
	infraaccount "github.com/amirasaad/accounts/infra/repository/account"
	"github.com/amirasaad/accounts/pkg/app"
	"github.com/amirasaad/accounts/pkg/config"
)

// InitializeDependencies sets up logging, opens the database and builds the
// repositories.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := setupLogger(cfg.Log, os.Stdout)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	logger.Info("Database ready", "dialect", db.Dialector.Name())

	return &app.Deps{
		DB:                db,
		AccountRepository: infraaccount.New(db),
		Logger:            logger,
	}, nil
}
