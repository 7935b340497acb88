package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/selene-health/selene/internal/models"
)

const MaxSymptomTagLength = 80

var (
	ErrInvalidSymptomTag       = errors.New("invalid symptom tag")
	ErrSymptomRecordNotFound   = errors.New("symptom record not found")
	ErrSymptomRecordLoadFailed = errors.New("load symptom records failed")
	ErrSymptomRecordSaveFailed = errors.New("save symptom record failed")
)

type SymptomRecordRepository interface {
	ListRecentByProfile(profileID uint, limit int) ([]models.SymptomRecord, error)
	ListByProfileSince(profileID uint, since time.Time) ([]models.SymptomRecord, error)
	Create(record *models.SymptomRecord) error
	DeleteByIDForProfile(recordID uint, profileID uint) (bool, error)
}

type SymptomService struct {
	records  SymptomRecordRepository
	location *time.Location
}

func NewSymptomService(records SymptomRecordRepository, location *time.Location) *SymptomService {
	if location == nil {
		location = time.UTC
	}
	return &SymptomService{
		records:  records,
		location: location,
	}
}

// RecordSymptom stores one timestamped occurrence of a free-form tag.
// A zero timestamp means "now". Per-day deduplication happens at
// aggregation time, not at write time, so rapid duplicate taps are
// harmless.
func (service *SymptomService) RecordSymptom(profileID uint, rawType string, recordedAt time.Time) (models.SymptomRecord, error) {
	symptomType := NormalizeSymptomTag(rawType)
	if symptomType == "" {
		return models.SymptomRecord{}, ErrInvalidSymptomTag
	}
	if recordedAt.IsZero() {
		recordedAt = time.Now().In(service.location)
	}

	record := models.SymptomRecord{
		ProfileID:  profileID,
		Type:       symptomType,
		RecordedAt: recordedAt,
	}
	if err := service.records.Create(&record); err != nil {
		return models.SymptomRecord{}, fmt.Errorf("%w: %v", ErrSymptomRecordSaveFailed, err)
	}
	return record, nil
}

func (service *SymptomService) ListRecent(profileID uint, limit int) ([]models.SymptomRecord, error) {
	records, err := service.records.ListRecentByProfile(profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSymptomRecordLoadFailed, err)
	}
	return records, nil
}

func (service *SymptomService) ListSince(profileID uint, since time.Time) ([]models.SymptomRecord, error) {
	records, err := service.records.ListByProfileSince(profileID, since)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSymptomRecordLoadFailed, err)
	}
	return records, nil
}

func (service *SymptomService) DeleteRecord(profileID uint, recordID uint) error {
	deleted, err := service.records.DeleteByIDForProfile(recordID, profileID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSymptomRecordSaveFailed, err)
	}
	if !deleted {
		return ErrSymptomRecordNotFound
	}
	return nil
}
