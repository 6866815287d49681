package services

import (
	"errors"
	"sync"
	"time"

	"github.com/valegre/turno/internal/models"
)

var (
	ErrPeriodInputMissing     = errors.New("period input missing")
	ErrInvalidPeriodRange     = errors.New("invalid period range")
	ErrNoEligibleUser         = errors.New("no eligible compensatory user")
	ErrRosterLoadFailed       = errors.New("load roster failed")
	ErrPrimaryPeriodSave      = errors.New("persist primary period failed")
	ErrCompensatoryPeriodSave = errors.New("persist compensatory period failed")
)

type PeriodRepository interface {
	Insert(period *models.FeedingPeriod) error
}

type PeriodSummary struct {
	UserID    uint   `json:"user_id"`
	UserName  string `json:"user_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	DayCount  int    `json:"day_count"`
}

// PeriodPlan is the presentation summary of a created primary/compensatory
// pair.
type PeriodPlan struct {
	Primary      PeriodSummary `json:"primary"`
	Compensatory PeriodSummary `json:"compensatory"`
}

// PeriodService creates period pairs. The two inserts run sequentially and
// are not atomic: a failure after the primary insert leaves the primary
// period persisted, and the distinct error tells the caller which step
// failed.
type PeriodService struct {
	mu       sync.Mutex
	inFlight bool
	periods  PeriodRepository
	users    RosterRepository
	location *time.Location
}

func NewPeriodService(periods PeriodRepository, users RosterRepository, location *time.Location) *PeriodService {
	if location == nil {
		location = time.UTC
	}
	return &PeriodService{
		periods:  periods,
		users:    users,
		location: location,
	}
}

// CreatePeriod validates the requested range, persists the primary period
// and then a compensatory period of the same length starting the day after
// the primary ends, owned by the first rotating roster user that is not the
// primary. Validation failures have no side effects.
func (service *PeriodService) CreatePeriod(primaryUserID uint, startDate string, endDate string) (PeriodPlan, error) {
	if err := service.begin(); err != nil {
		return PeriodPlan{}, err
	}
	defer service.finish()

	if primaryUserID == 0 || startDate == "" || endDate == "" {
		return PeriodPlan{}, ErrPeriodInputMissing
	}

	start, err := ParseDay(startDate, service.location)
	if err != nil {
		return PeriodPlan{}, ErrInvalidPeriodRange
	}
	end, err := ParseDay(endDate, service.location)
	if err != nil {
		return PeriodPlan{}, ErrInvalidPeriodRange
	}
	if end.Before(start) {
		return PeriodPlan{}, ErrInvalidPeriodRange
	}

	dayCount := InclusiveDayCount(start, end)

	primary := models.FeedingPeriod{
		UserID:    primaryUserID,
		StartDate: DayString(start, service.location),
		EndDate:   DayString(end, service.location),
	}
	if err := service.periods.Insert(&primary); err != nil {
		return PeriodPlan{}, ErrPrimaryPeriodSave
	}

	roster, err := service.users.ListOrderedByID()
	if err != nil {
		return PeriodPlan{}, ErrRosterLoadFailed
	}
	compensatoryUser, found := pickCompensatoryUser(roster, primaryUserID)
	if !found {
		return PeriodPlan{}, ErrNoEligibleUser
	}

	compStart := end.AddDate(0, 0, 1)
	compEnd := compStart.AddDate(0, 0, dayCount-1)
	compensatory := models.FeedingPeriod{
		UserID:    compensatoryUser.ID,
		StartDate: DayString(compStart, service.location),
		EndDate:   DayString(compEnd, service.location),
	}
	if err := service.periods.Insert(&compensatory); err != nil {
		return PeriodPlan{}, ErrCompensatoryPeriodSave
	}

	return PeriodPlan{
		Primary: PeriodSummary{
			UserID:    primary.UserID,
			UserName:  rosterName(roster, primary.UserID),
			StartDate: primary.StartDate,
			EndDate:   primary.EndDate,
			DayCount:  dayCount,
		},
		Compensatory: PeriodSummary{
			UserID:    compensatory.UserID,
			UserName:  compensatoryUser.Name,
			StartDate: compensatory.StartDate,
			EndDate:   compensatory.EndDate,
			DayCount:  dayCount,
		},
	}, nil
}

// pickCompensatoryUser takes the first roster user in id order that is
// neither the primary nor flagged non-rotating.
func pickCompensatoryUser(roster []models.User, primaryUserID uint) (models.User, bool) {
	for _, user := range roster {
		if user.ID == primaryUserID || user.NonRotating {
			continue
		}
		return user, true
	}
	return models.User{}, false
}

func rosterName(roster []models.User, userID uint) string {
	for _, user := range roster {
		if user.ID == userID {
			return user.Name
		}
	}
	return ""
}

func (service *PeriodService) begin() error {
	service.mu.Lock()
	defer service.mu.Unlock()
	if service.inFlight {
		return ErrOperationInFlight
	}
	service.inFlight = true
	return nil
}

func (service *PeriodService) finish() {
	service.mu.Lock()
	service.inFlight = false
	service.mu.Unlock()
}
