package auth

import (
	"errors"

	"github.com/amirasaad/ledger/pkg/domain"
	authsvc "github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the public authentication endpoints.
func Routes(app *fiber.App, authSvc *authsvc.Service) {
	app.Post("/api/auth/login", Login(authSvc))
	app.Post("/api/auth/CreateUser", CreateUser(authSvc))
}

// Login handles user authentication and returns a JWT token.
// @Summary User login
// @Description Authenticate with username and password. Unknown users and wrong passwords get the same answer.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} common.Response{data=LoginResponse}
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/auth/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err // Error already written by BindAndValidate
		}
		token, err := authSvc.Login(c.Context(), input.Name, input.Password)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return common.ProblemDetailsJSON(c, "Invalid username or password", nil, "Username or password is incorrect", fiber.StatusUnauthorized)
			}
			log.Errorf("Login failed: %v", err)
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login", LoginResponse{Token: token})
	}
}

// CreateUser registers a new user.
// @Summary Register user
// @Description Creates a user with a bcrypt-hashed password. Usernames are unique and case-sensitive.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body UserInput true "New user"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/auth/CreateUser [post]
func CreateUser(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UserInput](c)
		if input == nil {
			return err
		}
		u, err := authSvc.Register(c.Context(), input.Name, input.Password)
		if err != nil {
			log.Errorf("Failed to create user: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User created successfully", fiber.Map{"id": u.ID})
	}
}
