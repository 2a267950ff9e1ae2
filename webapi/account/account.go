package account

import (
	"fmt"
	"strconv"

	"github.com/amirasaad/accounts/pkg/domain/account"
	accountsvc "github.com/amirasaad/accounts/pkg/service/account"
	"github.com/amirasaad/accounts/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/lo"
)

// Routes registers the account endpoints.
//
// Routes:
//   - POST   /accounts      : Create an account.
//   - GET    /accounts      : List accounts, optionally filtered by ?name=.
//   - GET    /accounts/:id  : Read an account.
//   - PUT    /accounts/:id  : Replace the mutable fields of an account.
//   - DELETE /accounts/:id  : Delete an account.
func Routes(app fiber.Router, accountSvc *accountsvc.Service) {
	app.Post("/accounts", common.RequireJSON, CreateAccount(accountSvc))
	app.Get("/accounts", ListAccounts(accountSvc))
	app.Get("/accounts/:id", ReadAccount(accountSvc))
	app.Put("/accounts/:id", common.RequireJSON, UpdateAccount(accountSvc))
	app.Delete("/accounts/:id", DeleteAccount(accountSvc))
}

// CreateAccount returns a Fiber handler that creates an account from the
// JSON body and answers 201 with its Location.
// @Summary Create an account
// @Description Creates an account. name, address and email are required; phone_number is optional.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body AccountPayload true "Account details"
// @Success 201 {object} AccountPayload "Account created"
// @Header 201 {string} Location "URL of the new account"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 415 {object} common.ProblemDetails "Unsupported media type"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts [post]
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log.Info("Request to create an account")
		data, err := common.ParseBody(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err)
		}
		a, err := account.Deserialize(data)
		if err != nil {
			log.Errorf("Rejected account payload: %v", err)
			return common.ProblemDetailsJSON(c, "Invalid account", err)
		}
		if err := accountSvc.Create(c.UserContext(), a); err != nil {
			log.Errorf("Failed to create account: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		c.Location(fmt.Sprintf("%s/accounts/%d", c.BaseURL(), *a.ID))
		log.Infof("Account with ID [%d] created", *a.ID)
		return c.Status(fiber.StatusCreated).JSON(a.Serialize())
	}
}

// ListAccounts returns a Fiber handler listing every account, or only those
// whose name matches the name query parameter.
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Param name query string false "Exact account name"
// @Success 200 {array} AccountPayload "Accounts"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts [get]
func ListAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log.Info("Request to list accounts")
		var (
			accs []*account.Account
			err  error
		)
		if name := c.Query("name"); name != "" {
			accs, err = accountSvc.FindByName(c.UserContext(), name)
		} else {
			accs, err = accountSvc.All(c.UserContext())
		}
		if err != nil {
			log.Errorf("Failed to list accounts: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		out := lo.Map(accs, func(a *account.Account, _ int) map[string]any {
			return a.Serialize()
		})
		log.Infof("Returning [%d] accounts", len(out))
		return c.JSON(out)
	}
}

// ReadAccount returns a Fiber handler that fetches one account.
// @Summary Read an account
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} AccountPayload "Account"
// @Failure 400 {object} common.ProblemDetails "Invalid account ID"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /accounts/{id} [get]
func ReadAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err)
		}
		log.Infof("Request to read account with id: %d", id)
		a, err := accountSvc.FindOr404(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Account not found", err)
		}
		return c.JSON(a.Serialize())
	}
}

// UpdateAccount returns a Fiber handler that overwrites an account's mutable
// fields from the JSON body. The ID in the path wins over any ID in the body.
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body AccountPayload true "Account details"
// @Success 200 {object} AccountPayload "Account updated"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 415 {object} common.ProblemDetails "Unsupported media type"
// @Router /accounts/{id} [put]
func UpdateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err)
		}
		log.Infof("Request to update account with id: %d", id)
		a, err := accountSvc.FindOr404(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Account not found", err)
		}
		data, err := common.ParseBody(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err)
		}
		if err := a.Deserialize(data); err != nil {
			log.Errorf("Rejected account payload: %v", err)
			return common.ProblemDetailsJSON(c, "Invalid account", err)
		}
		if err := accountSvc.Update(c.UserContext(), a); err != nil {
			log.Errorf("Failed to update account %d: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to update account", err)
		}
		return c.JSON(a.Serialize())
	}
}

// DeleteAccount returns a Fiber handler that deletes an account. It answers
// 204 whether or not the account existed.
// @Summary Delete an account
// @Tags accounts
// @Param id path int true "Account ID"
// @Success 204 "Account deleted"
// @Failure 400 {object} common.ProblemDetails "Invalid account ID"
// @Router /accounts/{id} [delete]
func DeleteAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err)
		}
		log.Infof("Request to delete account with id: %d", id)
		if err := accountSvc.DeleteByID(c.UserContext(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete account", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 0)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "account ID must be a positive integer")
	}
	return uint(id), nil
}
