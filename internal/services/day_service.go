package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/selene-health/selene/internal/models"
)

const MaxDayNotesLength = 2000

var (
	ErrInvalidDailyFlow       = errors.New("invalid daily flow")
	ErrInvalidDischargeType   = errors.New("invalid discharge type")
	ErrInvalidWellnessScore   = errors.New("wellness score out of range")
	ErrDailyEntryLoadFailed   = errors.New("load daily entry failed")
	ErrDailyEntrySaveFailed   = errors.New("save daily entry failed")
	ErrDailyEntryDeleteFailed = errors.New("delete daily entry failed")
)

type DailyEntryRepository interface {
	ListByProfileRange(profileID uint, fromStart *time.Time, toEnd *time.Time) ([]models.DailyEntry, error)
	FindByProfileAndDayRange(profileID uint, dayStart time.Time, dayEnd time.Time) (models.DailyEntry, bool, error)
	Create(entry *models.DailyEntry) error
	Save(entry *models.DailyEntry) error
	DeleteByProfileAndDayRange(profileID uint, dayStart time.Time, dayEnd time.Time) error
}

type DayService struct {
	entries  DailyEntryRepository
	location *time.Location
}

func NewDayService(entries DailyEntryRepository, location *time.Location) *DayService {
	if location == nil {
		location = time.UTC
	}
	return &DayService{
		entries:  entries,
		location: location,
	}
}

type DailyEntryInput struct {
	Flow              string
	CrampsSeverity    int
	Mood              *int
	SleepQuality      *int
	EnergyLevel       *int
	DischargeType     string
	Spotting          bool
	BirthControlTaken *bool
	Notes             string
}

// NormalizeDailyEntryInput clamps severities, validates enums and score
// ranges, and caps notes. Scores outside 1..5 are rejected rather than
// clamped: a wrong rating is worse data than no rating.
func NormalizeDailyEntryInput(input DailyEntryInput) (DailyEntryInput, error) {
	if input.Flow == "" {
		input.Flow = models.FlowNone
	}
	if !models.IsValidDailyFlow(input.Flow) {
		return input, ErrInvalidDailyFlow
	}

	if input.DischargeType == "" {
		input.DischargeType = models.DischargeNone
	}
	if !models.IsValidDischargeType(input.DischargeType) {
		return input, ErrInvalidDischargeType
	}

	if input.CrampsSeverity < 0 {
		input.CrampsSeverity = 0
	}
	if input.CrampsSeverity > models.MaxCrampsSeverity {
		input.CrampsSeverity = models.MaxCrampsSeverity
	}

	for _, score := range []*int{input.Mood, input.SleepQuality, input.EnergyLevel} {
		if score == nil {
			continue
		}
		if *score < models.MinWellnessScore || *score > models.MaxWellnessScore {
			return input, ErrInvalidWellnessScore
		}
	}

	if len(input.Notes) > MaxDayNotesLength {
		input.Notes = input.Notes[:MaxDayNotesLength]
	}
	return input, nil
}

func (service *DayService) FetchEntriesForRange(profileID uint, from time.Time, to time.Time) ([]models.DailyEntry, error) {
	fromStart, _ := DayRange(from, service.location)
	_, toEnd := DayRange(to, service.location)
	entries, err := service.entries.ListByProfileRange(profileID, &fromStart, &toEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDailyEntryLoadFailed, err)
	}
	return entries, nil
}

func (service *DayService) FetchAllEntries(profileID uint) ([]models.DailyEntry, error) {
	entries, err := service.entries.ListByProfileRange(profileID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDailyEntryLoadFailed, err)
	}
	return entries, nil
}

// FetchEntryByDate returns the stored entry for a day, or an empty
// entry carrying the normalized date when none exists.
func (service *DayService) FetchEntryByDate(profileID uint, day time.Time) (models.DailyEntry, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	entry, found, err := service.entries.FindByProfileAndDayRange(profileID, dayStart, dayEnd)
	if err != nil {
		return models.DailyEntry{}, fmt.Errorf("%w: %v", ErrDailyEntryLoadFailed, err)
	}
	if !found {
		return models.DailyEntry{
			ProfileID:     profileID,
			Date:          dayStart,
			Flow:          models.FlowNone,
			DischargeType: models.DischargeNone,
		}, nil
	}
	return entry, nil
}

// UpsertEntry writes the single entry for a profile/day, creating or
// replacing in place so the one-entry-per-day invariant holds.
func (service *DayService) UpsertEntry(profileID uint, day time.Time, input DailyEntryInput) (models.DailyEntry, error) {
	normalized, err := NormalizeDailyEntryInput(input)
	if err != nil {
		return models.DailyEntry{}, err
	}

	dayStart, dayEnd := DayRange(day, service.location)
	entry, found, err := service.entries.FindByProfileAndDayRange(profileID, dayStart, dayEnd)
	if err != nil {
		return models.DailyEntry{}, fmt.Errorf("%w: %v", ErrDailyEntryLoadFailed, err)
	}
	if !found {
		entry = models.DailyEntry{
			ProfileID: profileID,
			Date:      dayStart,
		}
	}

	entry.Flow = normalized.Flow
	entry.CrampsSeverity = normalized.CrampsSeverity
	entry.Mood = normalized.Mood
	entry.SleepQuality = normalized.SleepQuality
	entry.EnergyLevel = normalized.EnergyLevel
	entry.DischargeType = normalized.DischargeType
	entry.Spotting = normalized.Spotting
	entry.BirthControlTaken = normalized.BirthControlTaken
	entry.Notes = normalized.Notes

	if !found {
		if err := service.entries.Create(&entry); err != nil {
			return models.DailyEntry{}, fmt.Errorf("%w: %v", ErrDailyEntrySaveFailed, err)
		}
		return entry, nil
	}
	if err := service.entries.Save(&entry); err != nil {
		return models.DailyEntry{}, fmt.Errorf("%w: %v", ErrDailyEntrySaveFailed, err)
	}
	return entry, nil
}

func (service *DayService) DeleteEntry(profileID uint, day time.Time) error {
	dayStart, dayEnd := DayRange(day, service.location)
	if err := service.entries.DeleteByProfileAndDayRange(profileID, dayStart, dayEnd); err != nil {
		return fmt.Errorf("%w: %v", ErrDailyEntryDeleteFailed, err)
	}
	return nil
}
