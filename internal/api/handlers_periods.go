package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/valegre/turno/internal/services"
)

func (handler *Handler) ListPeriods(c *fiber.Ctx) error {
	periods, err := handler.repositories.Periods.ListOrderedByStart()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch periods")
	}
	return c.JSON(fiber.Map{"periods": periods})
}

// CreatePeriod persists a primary period and its compensatory pair. A
// failure after the primary insert is reported with 502 so the caller can
// see the partial-success state instead of it being swallowed.
func (handler *Handler) CreatePeriod(c *fiber.Ctx) error {
	input := periodInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	plan, err := handler.periodService.CreatePeriod(input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPeriodInputMissing):
			return apiError(c, fiber.StatusBadRequest, "user, start date and end date are required")
		case errors.Is(err, services.ErrInvalidPeriodRange):
			return apiError(c, fiber.StatusBadRequest, "invalid period range")
		case errors.Is(err, services.ErrNoEligibleUser):
			return apiError(c, fiber.StatusBadGateway, "no eligible compensatory user; primary period was created")
		case errors.Is(err, services.ErrRosterLoadFailed):
			return apiError(c, fiber.StatusBadGateway, "roster unavailable; primary period was created")
		case errors.Is(err, services.ErrCompensatoryPeriodSave):
			return apiError(c, fiber.StatusBadGateway, "compensatory period failed; primary period was created")
		case errors.Is(err, services.ErrOperationInFlight):
			return apiError(c, fiber.StatusConflict, "period creation already in progress")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create period")
		}
	}

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(plan)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
