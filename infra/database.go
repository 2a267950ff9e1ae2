package infra

import (
	"errors"
	"fmt"
	"strings"

	infraaccount "github.com/amirasaad/accounts/infra/repository/account"
	"github.com/amirasaad/accounts/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite" // Sqlite driver based on CGO
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the GORM driver from the URL scheme.
func Dialector(databaseUrl string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(databaseUrl, "postgres://"),
		strings.HasPrefix(databaseUrl, "postgresql://"):
		return postgres.Open(databaseUrl), nil
	case strings.HasPrefix(databaseUrl, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(databaseUrl, "sqlite://")), nil
	case strings.HasPrefix(databaseUrl, "file:"):
		return sqlite.Open(databaseUrl), nil
	default:
		return nil, fmt.Errorf("unsupported database url scheme: %q", databaseUrl)
	}
}

// NewDBConnection opens the pool, applies pool limits and creates the schema.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	dialector, err := Dialector(cnf.Url)
	if err != nil {
		return nil, err
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cnf.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cnf.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cnf.ConnMaxLifetime)

	if err := Migrate(connection); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return connection, nil
}

// Migrate creates the tables that don't exist yet.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&infraaccount.Account{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
