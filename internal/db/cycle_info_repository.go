package db

import (
	"time"

	"github.com/selene-health/selene/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CycleInfoRepository struct {
	database *gorm.DB
}

func NewCycleInfoRepository(database *gorm.DB) *CycleInfoRepository {
	return &CycleInfoRepository{database: database}
}

func (repo *CycleInfoRepository) FindByProfile(profileID uint) (models.CycleInfo, bool, error) {
	info := models.CycleInfo{}
	result := repo.database.
		Where("profile_id = ?", profileID).
		Limit(1).
		Find(&info)
	if result.Error != nil {
		return models.CycleInfo{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleInfo{}, false, nil
	}
	return info, true, nil
}

// Upsert keeps at most one summary row per profile.
func (repo *CycleInfoRepository) Upsert(info *models.CycleInfo) error {
	info.UpdatedAt = time.Now()
	return repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "profile_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"average_cycle_length",
			"average_period_length",
			"next_period_predicted",
			"next_period_window_start",
			"next_period_window_end",
			"ovulation_predicted",
			"prediction_confidence",
			"updated_at",
		}),
	}).Create(info).Error
}
