package db

import (
	"github.com/selene-health/selene/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) List() ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)
	if err := repo.database.Order("id ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (repo *ProfileRepository) FindByID(profileID uint) (models.Profile, bool, error) {
	profile := models.Profile{}
	result := repo.database.Where("id = ?", profileID).Limit(1).Find(&profile)
	if result.Error != nil {
		return models.Profile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Profile{}, false, nil
	}
	return profile, true, nil
}

func (repo *ProfileRepository) Create(profile *models.Profile) error {
	return repo.database.Create(profile).Error
}

// EnsureDefault creates the initial profile on first run so single-user
// installs work without any setup step.
func (repo *ProfileRepository) EnsureDefault(name string) (models.Profile, error) {
	profiles, err := repo.List()
	if err != nil {
		return models.Profile{}, err
	}
	if len(profiles) > 0 {
		return profiles[0], nil
	}

	profile := models.Profile{Name: name}
	if err := repo.Create(&profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}
