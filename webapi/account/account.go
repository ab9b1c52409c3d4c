// Package account exposes the account endpoints. Every route requires a
// bearer token.
package account

import (
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/middleware"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	authsvc "github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Routes registers HTTP routes for account operations.
//
// Routes:
//   - GET    /Conta              : List all accounts.
//   - GET    /Conta/:id/saldo    : Balance of the account owned by person :id.
//   - POST   /Conta/:id/credito  : Credit account :id.
//   - POST   /Conta/:id/debito   : Debit account :id.
//   - DELETE /Conta/:id          : Delete account :id, keeping its person.
func Routes(app *fiber.App, accountSvc *accountsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.Protected(cfg.Auth.Jwt)
	app.Get("/Conta", protected, ListAccounts(accountSvc))
	app.Get("/Conta/:id/saldo", protected, GetBalance(accountSvc))
	app.Post("/Conta/:id/credito", protected, Credit(accountSvc, authSvc))
	app.Post("/Conta/:id/debito", protected, Debit(accountSvc, authSvc))
	app.Delete("/Conta/:id", protected, DeleteAccount(accountSvc))
}

func parseID(c *fiber.Ctx, title, detail string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Errorf("%s: %v", title, err)
		return uuid.Nil, false, common.ProblemDetailsJSON(c, title, err, detail, fiber.StatusBadRequest)
	}
	return id, true, nil
}

// actor names the authenticated user for the audit log line.
func actor(c *fiber.Ctx, authSvc *authsvc.Service) string {
	token, _ := c.Locals("user").(*jwt.Token)
	name, err := authSvc.CurrentUsername(token)
	if err != nil {
		return "unknown"
	}
	return name
}

// ListAccounts returns every account, oldest first.
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} common.Response{data=[]dto.AccountRead}
// @Failure 401 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /Conta [get]
// @Security Bearer
func ListAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := accountSvc.ListAccounts(c.Context())
		if err != nil {
			log.Errorf("Failed to list accounts: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts fetched", accounts)
	}
}

// GetBalance returns the balance of the account owned by the given person.
// @Summary Get balance
// @Description Looks the account up by its owner. 404 when the person does not exist or has no account.
// @Tags accounts
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} common.Response{data=dto.BalanceRead}
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /Conta/{id}/saldo [get]
// @Security Bearer
func GetBalance(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		personID, ok, err := parseID(c, "Invalid person ID", "Person ID must be a valid UUID")
		if !ok {
			return err
		}
		balance, err := accountSvc.GetBalance(c.Context(), personID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance fetched", balance)
	}
}

type fundsOp func(c *fiber.Ctx, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)

func moveFunds(authSvc *authsvc.Service, name string, op fundsOp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, ok, err := parseID(c, "Invalid account ID", "Account ID must be a valid UUID")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		log.Infof("%s: user %s, account %s, amount %s", name, actor(c, authSvc), accountID, input.Amount)
		balance, err := op(c, accountID, *input.Amount)
		if err != nil {
			log.Errorf("Failed to %s: %v", name, err)
			return common.ProblemDetailsJSON(c, "Failed to "+name, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, name+" successful", BalanceResponse{Balance: balance})
	}
}

// Credit adds funds to an account.
// @Summary Credit account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body AmountRequest true "Amount to credit"
// @Success 200 {object} common.Response{data=BalanceResponse}
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /Conta/{id}/credito [post]
// @Security Bearer
func Credit(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return moveFunds(authSvc, "credit", func(c *fiber.Ctx, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
		return accountSvc.Credit(c.Context(), id, amount)
	})
}

// Debit withdraws funds from an account. Overdrafts are refused with 400 and
// leave the balance unchanged.
// @Summary Debit account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body AmountRequest true "Amount to debit"
// @Success 200 {object} common.Response{data=BalanceResponse}
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /Conta/{id}/debito [post]
// @Security Bearer
func Debit(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return moveFunds(authSvc, "debit", func(c *fiber.Ctx, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
		return accountSvc.Debit(c.Context(), id, amount)
	})
}

// DeleteAccount removes an account. Its person stays and reads back with no
// account.
// @Summary Delete account
// @Tags accounts
// @Param id path string true "Account ID"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /Conta/{id} [delete]
// @Security Bearer
func DeleteAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, ok, err := parseID(c, "Invalid account ID", "Account ID must be a valid UUID")
		if !ok {
			return err
		}
		if err := accountSvc.DeleteAccount(c.Context(), accountID); err != nil {
			log.Errorf("Failed to delete account %s: %v", accountID, err)
			return common.ProblemDetailsJSON(c, "Failed to delete account", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
