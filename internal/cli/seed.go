package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/valegre/turno/internal/db"
	"github.com/valegre/turno/internal/models"
	"github.com/valegre/turno/internal/services"
)

// RunSeedScheduleCommand fills the per-day ledger for a date range by
// rotating through the rotating roster in id order. Dates that already
// carry an assignment are left untouched, and the rotation position is
// derived from the day offset so re-runs stay deterministic.
func RunSeedScheduleCommand(dbPath string, fromDate string, toDate string, location *time.Location) error {
	from, err := services.ParseDay(fromDate, location)
	if err != nil {
		return fmt.Errorf("invalid from date: %w", err)
	}
	to, err := services.ParseDay(toDate, location)
	if err != nil {
		return fmt.Errorf("invalid to date: %w", err)
	}
	if to.Before(from) {
		return errors.New("to date is before from date")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	roster, err := db.NewUserRepository(database).ListOrderedByID()
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	rotating := make([]models.User, 0, len(roster))
	for _, user := range roster {
		if !user.NonRotating {
			rotating = append(rotating, user)
		}
	}
	if len(rotating) == 0 {
		return errors.New("no rotating users in roster")
	}

	days := db.NewFeedingDayRepository(database)
	created := 0
	for offset, cursor := 0, from; !cursor.After(to); offset, cursor = offset+1, cursor.AddDate(0, 0, 1) {
		date := services.DayString(cursor, location)
		if _, exists, err := days.FindByDate(date); err != nil {
			return fmt.Errorf("check day %s: %w", date, err)
		} else if exists {
			continue
		}

		entry := models.FeedingDay{
			Date:   date,
			UserID: rotating[offset%len(rotating)].ID,
		}
		if err := days.Create(&entry); err != nil {
			return fmt.Errorf("create day %s: %w", date, err)
		}
		created++
	}

	fmt.Printf("✅ Seeded %d day(s) between %s and %s\n", created, services.DayString(from, location), services.DayString(to, location))
	return nil
}
