package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	FeedingDays *FeedingDayRepository
	Periods     *FeedingPeriodRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		FeedingDays: NewFeedingDayRepository(database),
		Periods:     NewFeedingPeriodRepository(database),
	}
}
