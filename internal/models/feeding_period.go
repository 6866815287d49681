package models

import "time"

// FeedingPeriod is a contiguous date range owned by one user. Periods are
// created in primary/compensatory pairs and never mutated afterwards.
type FeedingPeriod struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	StartDate string    `gorm:"type:text;not null" json:"start_date"`
	EndDate   string    `gorm:"type:text;not null" json:"end_date"`
	CreatedAt time.Time `json:"-"`
}
