package db

import (
	"time"

	"github.com/selene-health/selene/internal/models"
	"gorm.io/gorm"
)

type DailyEntryRepository struct {
	database *gorm.DB
}

func NewDailyEntryRepository(database *gorm.DB) *DailyEntryRepository {
	return &DailyEntryRepository{database: database}
}

func (repo *DailyEntryRepository) ListByProfileRange(profileID uint, fromStart *time.Time, toEnd *time.Time) ([]models.DailyEntry, error) {
	query := repo.database.Model(&models.DailyEntry{}).Where("profile_id = ?", profileID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	entries := make([]models.DailyEntry, 0)
	if err := query.Order("date ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *DailyEntryRepository) FindByProfileAndDayRange(profileID uint, dayStart time.Time, dayEnd time.Time) (models.DailyEntry, bool, error) {
	entry := models.DailyEntry{}
	result := repo.database.
		Where("profile_id = ? AND date >= ? AND date < ?", profileID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *DailyEntryRepository) Create(entry *models.DailyEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *DailyEntryRepository) Save(entry *models.DailyEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *DailyEntryRepository) DeleteByProfileAndDayRange(profileID uint, dayStart time.Time, dayEnd time.Time) error {
	return repo.database.Where("profile_id = ? AND date >= ? AND date < ?", profileID, dayStart, dayEnd).Delete(&models.DailyEntry{}).Error
}
