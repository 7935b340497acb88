package db

import (
	"github.com/selene-health/selene/internal/models"
	"gorm.io/gorm"
)

type PeriodEntryRepository struct {
	database *gorm.DB
}

func NewPeriodEntryRepository(database *gorm.DB) *PeriodEntryRepository {
	return &PeriodEntryRepository{database: database}
}

// ListByProfileDesc returns entries newest-first, the order the phase
// classifier and predictor expect.
func (repo *PeriodEntryRepository) ListByProfileDesc(profileID uint) ([]models.PeriodEntry, error) {
	entries := make([]models.PeriodEntry, 0)
	if err := repo.database.
		Where("profile_id = ?", profileID).
		Order("start_date DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *PeriodEntryRepository) FindByIDForProfile(entryID uint, profileID uint) (models.PeriodEntry, error) {
	entry := models.PeriodEntry{}
	if err := repo.database.
		Where("id = ? AND profile_id = ?", entryID, profileID).
		First(&entry).Error; err != nil {
		return models.PeriodEntry{}, err
	}
	return entry, nil
}

func (repo *PeriodEntryRepository) Create(entry *models.PeriodEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *PeriodEntryRepository) Save(entry *models.PeriodEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *PeriodEntryRepository) Delete(entry *models.PeriodEntry) error {
	return repo.database.Delete(entry).Error
}
