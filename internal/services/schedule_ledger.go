package services

import "github.com/valegre/turno/internal/models"

// ScheduleLedger is the in-memory copy of the per-day assignment ledger and
// the user roster. It is an explicit value owned by ScheduleService and is
// only mutated through ApplyReassignment after a confirmed write.
type ScheduleLedger struct {
	Days   []models.FeedingDay
	Roster []models.User
}

// FindAssignment returns the assignment for an exact YYYY-MM-DD date. At
// most one entry should exist per date; if upstream data carries duplicates
// the first in ledger order wins.
func (ledger ScheduleLedger) FindAssignment(date string) (models.FeedingDay, bool) {
	for _, day := range ledger.Days {
		if day.Date == date {
			return day, true
		}
	}
	return models.FeedingDay{}, false
}

func (ledger ScheduleLedger) FindAssignmentByID(dayID uint) (models.FeedingDay, bool) {
	for _, day := range ledger.Days {
		if day.ID == dayID {
			return day, true
		}
	}
	return models.FeedingDay{}, false
}

func (ledger ScheduleLedger) UserByID(userID uint) (models.User, bool) {
	for _, user := range ledger.Roster {
		if user.ID == userID {
			return user, true
		}
	}
	return models.User{}, false
}

// UserName resolves a display name, or "" when the id is not in the roster.
// A dangling user reference is a recoverable inconsistency, not an error.
func (ledger ScheduleLedger) UserName(userID uint) string {
	user, ok := ledger.UserByID(userID)
	if !ok {
		return ""
	}
	return user.Name
}

// ApplyReassignment patches one entry in place: same id, same date, new
// owner. Reports whether the entry was found.
func (ledger *ScheduleLedger) ApplyReassignment(dayID uint, userID uint) bool {
	for index := range ledger.Days {
		if ledger.Days[index].ID == dayID {
			ledger.Days[index].UserID = userID
			return true
		}
	}
	return false
}
