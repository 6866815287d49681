package db

import (
	"github.com/valegre/turno/internal/models"
	"gorm.io/gorm"
)

type FeedingDayRepository struct {
	database *gorm.DB
}

func NewFeedingDayRepository(database *gorm.DB) *FeedingDayRepository {
	return &FeedingDayRepository{database: database}
}

func (repo *FeedingDayRepository) ListAll() ([]models.FeedingDay, error) {
	days := make([]models.FeedingDay, 0)
	if err := repo.database.Order("date ASC, id ASC").Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (repo *FeedingDayRepository) FindByDate(date string) (models.FeedingDay, bool, error) {
	entry := models.FeedingDay{}
	result := repo.database.
		Where("date = ?", date).
		Order("id ASC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.FeedingDay{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.FeedingDay{}, false, nil
	}
	return entry, true, nil
}

func (repo *FeedingDayRepository) Create(entry *models.FeedingDay) error {
	return repo.database.Create(entry).Error
}

// UpdateUserByID changes the owning user of one ledger entry. The date is
// deliberately left untouched.
func (repo *FeedingDayRepository) UpdateUserByID(dayID uint, userID uint) error {
	return repo.database.Model(&models.FeedingDay{}).
		Where("id = ?", dayID).
		Update("user_id", userID).Error
}
