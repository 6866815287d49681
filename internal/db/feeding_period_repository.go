package db

import (
	"github.com/valegre/turno/internal/models"
	"gorm.io/gorm"
)

type FeedingPeriodRepository struct {
	database *gorm.DB
}

func NewFeedingPeriodRepository(database *gorm.DB) *FeedingPeriodRepository {
	return &FeedingPeriodRepository{database: database}
}

func (repo *FeedingPeriodRepository) Insert(period *models.FeedingPeriod) error {
	return repo.database.Create(period).Error
}

func (repo *FeedingPeriodRepository) ListOrderedByStart() ([]models.FeedingPeriod, error) {
	periods := make([]models.FeedingPeriod, 0)
	if err := repo.database.Order("start_date ASC, id ASC").Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}
