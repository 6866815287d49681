package api

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valegre/turno/internal/services"
)

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	// Page loads re-read the persisted ledger; everything below works off
	// the refreshed in-memory copy. A failed read keeps the previous copy.
	if err := handler.scheduleService.Refresh(); err != nil {
		log.Printf("refresh schedule ledger: %v", err)
	}

	now := time.Now()
	monthStart, err := parseMonthQuery(c.Query("month"), now, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	ledger := handler.scheduleService.Snapshot()
	today := handler.scheduleService.Today(now)
	days := services.BuildCalendarDayStates(monthStart, ledger, now, handler.location)

	periods, err := handler.repositories.Periods.ListOrderedByStart()
	if err != nil {
		periods = nil
	}

	return handler.render(c, "dashboard", fiber.Map{
		"Title":       "Turno",
		"CurrentUser": user,
		"Today":       today,
		"Days":        days,
		"Users":       ledger.Roster,
		"Periods":     periods,
		"MonthLabel":  monthStart.Format("January 2006"),
		"PrevMonth":   monthStart.AddDate(0, -1, 0).Format("2006-01"),
		"NextMonth":   monthStart.AddDate(0, 1, 0).Format("2006-01"),
	})
}
