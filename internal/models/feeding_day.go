package models

// FeedingDay is one calendar day's duty assignment. Date is the canonical
// YYYY-MM-DD form and is unique across the ledger.
type FeedingDay struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Date   string `gorm:"type:text;uniqueIndex;not null" json:"date"`
	UserID uint   `gorm:"not null" json:"user_id"`
}
