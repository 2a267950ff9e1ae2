package testutils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/accounts/infra"
	infraaccount "github.com/amirasaad/accounts/infra/repository/account"
	"github.com/amirasaad/accounts/pkg/app"
	"github.com/amirasaad/accounts/pkg/config"
	"github.com/amirasaad/accounts/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// TestConfig returns a configuration pointing at the given database.
func TestConfig(databaseURL string) *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 8080, ShutdownTimeout: time.Second},
		Log:    &config.Log{Format: "text", Prefix: "[accounts]"},
		DB: &config.DB{
			Url:             databaseURL,
			MaxOpenConns:    1,
			MaxIdleConns:    1,
			ConnMaxLifetime: time.Hour,
		},
	}
}

// NewApp builds the full Fiber app over db with logging discarded.
func NewApp(db *gorm.DB, cfg *config.App) *fiber.App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps := &app.Deps{
		DB:                db,
		AccountRepository: infraaccount.New(db),
		Logger:            logger,
	}
	return webapi.SetupApp(app.New(deps, cfg))
}

// NewSQLiteApp builds the app over a private in-memory SQLite database.
func NewSQLiteApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := TestConfig("sqlite://file::memory:")
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.Close(db) })
	return NewApp(db, cfg)
}

// Request performs an in-process request. A non-empty contentType is set on
// the request.
func Request(t *testing.T, app *fiber.App, method, path, contentType, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// AccountJSON returns a valid account payload with unique field values.
func AccountJSON() string {
	id := uuid.NewString()[:8]
	return fmt.Sprintf(
		`{"name":"user-%s","address":"%s Main St","email":"%s@example.com","phone_number":"555-0100"}`,
		id, id, id,
	)
}

// E2ETestSuite provides a test suite with a real Postgres database using Testcontainers
type E2ETestSuite struct {
	suite.Suite
	pgContainer *tcpostgres.PostgresContainer
	db          *gorm.DB
	App         *fiber.App
}

// startPostgresContainer starts a Postgres container using Testcontainers
func (s *E2ETestSuite) startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
}

// SetupSuite starts Postgres and builds the app on top of it. The suite is
// skipped under -short or when no container runtime is reachable.
func (s *E2ETestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping Postgres suite in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(s.T())
	ctx := context.Background()

	pg, err := s.startPostgresContainer(ctx)
	if err != nil {
		s.T().Skipf("postgres container unavailable: %v", err)
	}
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	cfg := TestConfig(dsn)
	cfg.DB.MaxOpenConns = 5
	cfg.DB.MaxIdleConns = 5
	s.db, err = infra.NewDBConnection(cfg.DB, cfg.Env)
	s.Require().NoError(err)

	s.App = NewApp(s.db, cfg)
}

// SetupTest empties the accounts table.
func (s *E2ETestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE accounts RESTART IDENTITY").Error)
}

// TearDownSuite cleans up the test suite resources
func (s *E2ETestSuite) TearDownSuite() {
	if s.db != nil {
		_ = infra.Close(s.db)
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(context.Background())
	}
}

// MakeRequest is a helper for making JSON requests in suite tests.
func (s *E2ETestSuite) MakeRequest(method, path, body string) *http.Response {
	contentType := ""
	if body != "" {
		contentType = fiber.MIMEApplicationJSON
	}
	return Request(s.T(), s.App, method, path, contentType, body)
}
