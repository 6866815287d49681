package models

import "time"

// User is a roster member. The roster is managed by the admin CLI; the
// scheduling core only ever reads it.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"-"`
	PasswordHash string    `gorm:"not null" json:"-"`
	NonRotating  bool      `gorm:"not null;default:false" json:"non_rotating"`
	CreatedAt    time.Time `gorm:"not null" json:"-"`
}
