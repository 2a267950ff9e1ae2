package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/amirasaad/accounts/cmd/server/swagger"
	"github.com/amirasaad/accounts/infra"
	"github.com/amirasaad/accounts/infra/initializer"
	"github.com/amirasaad/accounts/pkg/app"
	"github.com/amirasaad/accounts/pkg/config"
	"github.com/amirasaad/accounts/webapi"
	log "github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
)

// @title Account REST API Service
// @version 1.0
// @description CRUD service for customer accounts.
// @contact.name API Support
// @license.name Apache 2.0
// @host localhost:8080
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := infra.Close(deps.DB); err != nil {
			deps.Logger.Error("Failed to close database", "error", err)
		}
	}()

	fiberApp := webapi.SetupApp(app.New(deps, cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, fiberApp, cfg.Server, deps.Logger)
}

// serve listens until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, fiberApp *fiber.App, srv *config.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "address", srv.Addr(), "base_url", srv.BaseURL())
		errCh <- fiberApp.Listen(srv.Addr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", "timeout", srv.ShutdownTimeout)
	if err := fiberApp.ShutdownWithTimeout(srv.ShutdownTimeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("Server stopped")
	return nil
}
