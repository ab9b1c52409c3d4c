package health

import (
	healthsvc "github.com/amirasaad/ledger/pkg/service/health"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the database readiness probe.
func Routes(app *fiber.App, healthSvc *healthsvc.Service) {
	app.Get("/api/health/db", CheckDB(healthSvc))
}

// CheckDB pings the database.
// @Summary Database health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/health/db [get]
func CheckDB(healthSvc *healthsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := healthSvc.CheckDB(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":   "unhealthy",
				"database": "disconnected",
				"error":    err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status":   "healthy",
			"database": "connected",
		})
	}
}
