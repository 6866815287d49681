package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valegre/turno/internal/services"
)

// GetSchedule returns the full ledger for calendar-tile decoration.
func (handler *Handler) GetSchedule(c *fiber.Ctx) error {
	ledger := handler.scheduleService.Snapshot()
	return c.JSON(fiber.Map{"days": ledger.Days})
}

func (handler *Handler) GetToday(c *fiber.Ctx) error {
	return c.JSON(handler.scheduleService.Today(time.Now()))
}

// GetScheduleDay resolves one calendar day for click-driven detail display.
func (handler *Handler) GetScheduleDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	resolved := handler.scheduleService.Assignment(services.DayString(day, handler.location))
	if !resolved.Found {
		return apiError(c, fiber.StatusNotFound, "no assignment for date")
	}
	return c.JSON(resolved)
}

func (handler *Handler) ReassignDay(c *fiber.Ctx) error {
	dayID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || dayID == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid assignment id")
	}

	input := reassignInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	userName, err := handler.scheduleService.Reassign(uint(dayID), input.UserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAssignmentNotFound):
			return apiError(c, fiber.StatusNotFound, "assignment not found")
		case errors.Is(err, services.ErrUnknownUser):
			return apiError(c, fiber.StatusBadRequest, "user not in roster")
		case errors.Is(err, services.ErrOperationInFlight):
			return apiError(c, fiber.StatusConflict, "reassignment already in progress")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to reassign day")
		}
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true, "user_name": userName})
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (handler *Handler) GetUsers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"users": handler.scheduleService.Roster()})
}
