package db

import (
	"time"

	"github.com/selene-health/selene/internal/models"
	"gorm.io/gorm"
)

type SymptomRecordRepository struct {
	database *gorm.DB
}

func NewSymptomRecordRepository(database *gorm.DB) *SymptomRecordRepository {
	return &SymptomRecordRepository{database: database}
}

func (repo *SymptomRecordRepository) ListRecentByProfile(profileID uint, limit int) ([]models.SymptomRecord, error) {
	records := make([]models.SymptomRecord, 0)
	query := repo.database.
		Where("profile_id = ?", profileID).
		Order("recorded_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *SymptomRecordRepository) ListByProfileSince(profileID uint, since time.Time) ([]models.SymptomRecord, error) {
	records := make([]models.SymptomRecord, 0)
	if err := repo.database.
		Where("profile_id = ? AND recorded_at >= ?", profileID, since).
		Order("recorded_at ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *SymptomRecordRepository) Create(record *models.SymptomRecord) error {
	return repo.database.Create(record).Error
}

func (repo *SymptomRecordRepository) DeleteByIDForProfile(recordID uint, profileID uint) (bool, error) {
	result := repo.database.
		Where("id = ? AND profile_id = ?", recordID, profileID).
		Delete(&models.SymptomRecord{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
