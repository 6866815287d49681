package services

import (
	"errors"
	"sync"
	"time"

	"github.com/valegre/turno/internal/models"
)

var (
	ErrLedgerLoadFailed   = errors.New("load schedule ledger failed")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrUnknownUser        = errors.New("user not in roster")
	ErrReassignFailed     = errors.New("persist reassignment failed")
	ErrOperationInFlight  = errors.New("operation already in flight")
)

type ScheduleDayRepository interface {
	ListAll() ([]models.FeedingDay, error)
	UpdateUserByID(dayID uint, userID uint) error
}

type RosterRepository interface {
	ListOrderedByID() ([]models.User, error)
}

// TodayAssignment is the resolved state of the current calendar day.
type TodayAssignment struct {
	AssignmentID uint   `json:"assignment_id"`
	Date         string `json:"date"`
	UserID       uint   `json:"user_id"`
	UserName     string `json:"user_name"`
	Found        bool   `json:"found"`
}

// ScheduleService owns the cached ledger and is the only component allowed
// to mutate it. Reads take the lock shared; the cache is patched only after
// the backing store confirms a write.
type ScheduleService struct {
	mu               sync.RWMutex
	days             ScheduleDayRepository
	users            RosterRepository
	location         *time.Location
	ledger           ScheduleLedger
	reassignInFlight bool
}

func NewScheduleService(days ScheduleDayRepository, users RosterRepository, location *time.Location) *ScheduleService {
	if location == nil {
		location = time.UTC
	}
	return &ScheduleService{
		days:     days,
		users:    users,
		location: location,
	}
}

// Refresh replaces the cached ledger with the persisted state. A read
// failure keeps the previous ledger untouched.
func (service *ScheduleService) Refresh() error {
	roster, err := service.users.ListOrderedByID()
	if err != nil {
		return ErrLedgerLoadFailed
	}
	days, err := service.days.ListAll()
	if err != nil {
		return ErrLedgerLoadFailed
	}

	service.mu.Lock()
	service.ledger = ScheduleLedger{Days: days, Roster: roster}
	service.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the cached ledger for presentation.
func (service *ScheduleService) Snapshot() ScheduleLedger {
	service.mu.RLock()
	defer service.mu.RUnlock()

	days := make([]models.FeedingDay, len(service.ledger.Days))
	copy(days, service.ledger.Days)
	roster := make([]models.User, len(service.ledger.Roster))
	copy(roster, service.ledger.Roster)
	return ScheduleLedger{Days: days, Roster: roster}
}

func (service *ScheduleService) Roster() []models.User {
	service.mu.RLock()
	defer service.mu.RUnlock()

	roster := make([]models.User, len(service.ledger.Roster))
	copy(roster, service.ledger.Roster)
	return roster
}

// Today resolves the assignment for the current local calendar day. A
// missing assignment or a dangling user id leaves the respective fields
// empty instead of failing.
func (service *ScheduleService) Today(now time.Time) TodayAssignment {
	return service.Assignment(DayString(now, service.location))
}

// Assignment resolves one calendar day by exact date-string match.
func (service *ScheduleService) Assignment(date string) TodayAssignment {
	service.mu.RLock()
	defer service.mu.RUnlock()

	entry, found := service.ledger.FindAssignment(date)
	if !found {
		return TodayAssignment{Date: date}
	}
	return TodayAssignment{
		AssignmentID: entry.ID,
		Date:         entry.Date,
		UserID:       entry.UserID,
		UserName:     service.ledger.UserName(entry.UserID),
		Found:        true,
	}
}

// Reassign moves one ledger day to a new owner. The cached ledger is patched
// only after the persistence call succeeds; any validation failure is a
// no-op. Re-entrant calls are rejected while a reassignment is awaiting the
// backing store.
func (service *ScheduleService) Reassign(dayID uint, userID uint) (string, error) {
	service.mu.Lock()
	if service.reassignInFlight {
		service.mu.Unlock()
		return "", ErrOperationInFlight
	}
	service.reassignInFlight = true

	_, dayFound := service.ledger.FindAssignmentByID(dayID)
	user, userFound := service.ledger.UserByID(userID)
	service.mu.Unlock()

	defer func() {
		service.mu.Lock()
		service.reassignInFlight = false
		service.mu.Unlock()
	}()

	if dayID == 0 || !dayFound {
		return "", ErrAssignmentNotFound
	}
	if userID == 0 || !userFound {
		return "", ErrUnknownUser
	}

	if err := service.days.UpdateUserByID(dayID, userID); err != nil {
		return "", ErrReassignFailed
	}

	service.mu.Lock()
	service.ledger.ApplyReassignment(dayID, userID)
	service.mu.Unlock()

	return user.Name, nil
}
