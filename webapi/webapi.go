// Package webapi wires the HTTP surface of the accounts service: middleware,
// error handling, the index and health endpoints, the OpenAPI UI and the
// account routes.
package webapi

import (
	"github.com/amirasaad/accounts/pkg/app"
	accountweb "github.com/amirasaad/accounts/webapi/account"
	"github.com/amirasaad/accounts/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/swagger"
)

const (
	serviceName    = "Account REST API Service"
	serviceVersion = "1.0"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: serviceName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := common.ErrorToStatusCode(err)
			return common.ProblemDetailsJSON(c, utils.StatusMessage(status), err, status)
		},
	})
	fiberApp.Use(recover.New())
	if a.Config == nil || a.Config.IsDevelopment() {
		fiberApp.Use(logger.New())
	}

	fiberApp.Get("/swagger/*", swagger.HandlerDefault)
	fiberApp.Get("/", Index)
	fiberApp.Get("/health", Health)

	accountweb.Routes(fiberApp, a.AccountService)
	return fiberApp
}

// Index describes the service.
// @Summary Service index
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func Index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    serviceName,
		"version": serviceVersion,
		"paths":   c.BaseURL() + "/accounts",
	})
}

// Health reports liveness.
// @Summary Health check
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "OK"})
}
