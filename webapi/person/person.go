// Package person exposes the person resource over HTTP.
package person

import (
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/middleware"
	personsvc "github.com/amirasaad/ledger/pkg/service/person"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Routes registers the person endpoints. Reads are public; writes need a
// bearer token.
//
// Routes:
//   - GET    /api/Pessoa      : List people with their account summary.
//   - GET    /api/Pessoa/:id  : Get one person.
//   - POST   /api/Pessoa      : Create a person and its account.
//   - PATCH  /api/Pessoa/:id  : Rename a person.
//   - DELETE /api/Pessoa/:id  : Delete a person and its account.
func Routes(app *fiber.App, personSvc *personsvc.Service, cfg *config.App) {
	protected := middleware.Protected(cfg.Auth.Jwt)
	app.Get("/api/Pessoa", ListPeople(personSvc))
	app.Get("/api/Pessoa/:id", GetPerson(personSvc))
	app.Post("/api/Pessoa", protected, CreatePerson(personSvc))
	app.Patch("/api/Pessoa/:id", protected, UpdatePerson(personSvc))
	app.Delete("/api/Pessoa/:id", protected, DeletePerson(personSvc))
}

func parseID(c *fiber.Ctx) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Errorf("Invalid person ID: %v", err)
		return uuid.Nil, false, common.ProblemDetailsJSON(c, "Invalid person ID", err, "Person ID must be a valid UUID", fiber.StatusBadRequest)
	}
	return id, true, nil
}

// ListPeople returns every person, oldest first.
// @Summary List people
// @Tags people
// @Produce json
// @Success 200 {object} common.Response{data=[]dto.PersonRead}
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/Pessoa [get]
func ListPeople(personSvc *personsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		people, err := personSvc.ListPeople(c.Context())
		if err != nil {
			log.Errorf("Failed to list people: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list people", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "People fetched", people)
	}
}

// GetPerson returns one person with its account summary.
// @Summary Get person
// @Tags people
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} common.Response{data=dto.PersonRead}
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/Pessoa/{id} [get]
func GetPerson(personSvc *personsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c)
		if !ok {
			return err
		}
		p, err := personSvc.GetPerson(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get person", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Person fetched", p)
	}
}

// CreatePerson creates a person together with its account.
// @Summary Create person
// @Description Creates a person and opens its account with saldoInicial (default 0, two decimal places at most).
// @Tags people
// @Accept json
// @Produce json
// @Param request body CreatePersonRequest true "New person"
// @Success 201 {object} common.Response{data=CreatedResponse}
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/Pessoa [post]
// @Security Bearer
func CreatePerson(personSvc *personsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreatePersonRequest](c)
		if input == nil {
			return err
		}
		p, err := personSvc.CreatePerson(c.Context(), input.Name, input.InitialBalance)
		if err != nil {
			log.Errorf("Failed to create person: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create person", err)
		}
		log.Infof("Person created: %s", p.ID)
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Person created", CreatedResponse{ID: p.ID.String()})
	}
}

// UpdatePerson renames a person.
// @Summary Update person
// @Tags people
// @Accept json
// @Param id path string true "Person ID"
// @Param request body UpdatePersonRequest true "Fields to change"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/Pessoa/{id} [patch]
// @Security Bearer
func UpdatePerson(personSvc *personsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c)
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[UpdatePersonRequest](c)
		if input == nil {
			return err
		}
		if err := personSvc.UpdatePersonName(c.Context(), id, input.Name); err != nil {
			log.Errorf("Failed to update person %s: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to update person", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeletePerson removes a person and, with it, its account.
// @Summary Delete person
// @Tags people
// @Param id path string true "Person ID"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/Pessoa/{id} [delete]
// @Security Bearer
func DeletePerson(personSvc *personsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c)
		if !ok {
			return err
		}
		if err := personSvc.DeletePerson(c.Context(), id); err != nil {
			log.Errorf("Failed to delete person %s: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to delete person", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
