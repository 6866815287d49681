package services

import (
	"fmt"
	"time"
)

type CalendarDayState struct {
	Date       time.Time
	DateString string
	Day        int
	InMonth    bool
	IsToday    bool
	Assigned   bool
	OwnerID    uint
	OwnerName  string
	OwnerTag   string
}

// OwnerTag is the per-user CSS-class-like marker used to decorate calendar
// tiles, one tag per owning user id.
func OwnerTag(userID uint) string {
	return fmt.Sprintf("user-%d", userID)
}

// BuildCalendarDayStates lays out a weekday-aligned month grid and decorates
// each tile from the ledger. Unassigned days carry no owner tag.
func BuildCalendarDayStates(monthStart time.Time, ledger ScheduleLedger, now time.Time, location *time.Location) []CalendarDayState {
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))

	todayKey := DayString(now, location)

	days := make([]CalendarDayState, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		key := day.Format(DayLayout)
		state := CalendarDayState{
			Date:       day,
			DateString: key,
			Day:        day.Day(),
			InMonth:    day.Month() == monthStart.Month(),
			IsToday:    key == todayKey,
		}

		if entry, found := ledger.FindAssignment(key); found {
			state.Assigned = true
			state.OwnerID = entry.UserID
			state.OwnerName = ledger.UserName(entry.UserID)
			state.OwnerTag = OwnerTag(entry.UserID)
		}

		days = append(days, state)
	}

	return days
}
