// Package middleware holds fiber middleware shared by the HTTP routes.
package middleware

import (
	"slices"
	"strings"

	"github.com/amirasaad/ledger/pkg/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Protected verifies the bearer token: HS256 signature, expiry, issuer and
// audience. The parsed *jwt.Token is stored in c.Locals("user").
func Protected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.Secret)},
		ContextKey:   "user",
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok || !validClaims(token, cfg) {
				return problem(c, fiber.StatusUnauthorized, "Invalid or expired JWT")
			}
			return c.Next()
		},
	})
}

func validClaims(token *jwt.Token, cfg *config.Jwt) bool {
	iss, err := token.Claims.GetIssuer()
	if err != nil || iss != cfg.Issuer {
		return false
	}
	aud, err := token.Claims.GetAudience()
	if err != nil {
		return false
	}
	return slices.Contains(aud, cfg.Audience)
}

func jwtError(c *fiber.Ctx, err error) error {
	if strings.EqualFold(err.Error(), "Missing or malformed JWT") {
		return problem(c, fiber.StatusBadRequest, "Missing or malformed JWT")
	}
	return problem(c, fiber.StatusUnauthorized, "Invalid or expired JWT")
}

func problem(c *fiber.Ctx, status int, title string) error {
	return c.Status(status).JSON(fiber.Map{
		"type":   "about:blank",
		"title":  title,
		"status": status,
	}, "application/problem+json")
}
