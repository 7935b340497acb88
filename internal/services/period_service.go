package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/selene-health/selene/internal/models"
)

const MaxPeriodNotesLength = 2000

var (
	ErrInvalidPeriodFlow       = errors.New("invalid period flow")
	ErrPeriodEndBeforeStart    = errors.New("period end before start")
	ErrPeriodEntryNotFound     = errors.New("period entry not found")
	ErrPeriodEntryCreateFailed = errors.New("create period entry failed")
	ErrPeriodEntryUpdateFailed = errors.New("update period entry failed")
	ErrPeriodEntryDeleteFailed = errors.New("delete period entry failed")
	ErrCycleInfoRefreshFailed  = errors.New("refresh cycle info failed")
)

type PeriodEntryRepository interface {
	ListByProfileDesc(profileID uint) ([]models.PeriodEntry, error)
	FindByIDForProfile(entryID uint, profileID uint) (models.PeriodEntry, error)
	Create(entry *models.PeriodEntry) error
	Save(entry *models.PeriodEntry) error
	Delete(entry *models.PeriodEntry) error
}

type CycleInfoRepository interface {
	FindByProfile(profileID uint) (models.CycleInfo, bool, error)
	Upsert(info *models.CycleInfo) error
}

type PeriodService struct {
	entries  PeriodEntryRepository
	cycles   CycleInfoRepository
	window   CycleWindowPolicy
	summary  CycleSummaryPolicy
	location *time.Location
}

func NewPeriodService(
	entries PeriodEntryRepository,
	cycles CycleInfoRepository,
	window CycleWindowPolicy,
	summary CycleSummaryPolicy,
	location *time.Location,
) *PeriodService {
	if location == nil {
		location = time.UTC
	}
	return &PeriodService{
		entries:  entries,
		cycles:   cycles,
		window:   window,
		summary:  summary,
		location: location,
	}
}

type PeriodEntryInput struct {
	StartDate time.Time
	EndDate   *time.Time
	Flow      string
	Symptoms  []string
	Notes     string
}

// NormalizePeriodEntryInput validates and canonicalizes user input
// before it reaches the store: dates are reduced to calendar days,
// symptom tags deduplicated, and notes capped.
func NormalizePeriodEntryInput(input PeriodEntryInput, location *time.Location) (PeriodEntryInput, error) {
	if input.Flow == "" {
		input.Flow = models.FlowMedium
	}
	if !models.IsValidPeriodFlow(input.Flow) {
		return input, ErrInvalidPeriodFlow
	}

	input.StartDate = DateAtLocation(input.StartDate, location)
	if input.EndDate != nil {
		endDate := DateAtLocation(*input.EndDate, location)
		if endDate.Before(input.StartDate) {
			return input, ErrPeriodEndBeforeStart
		}
		input.EndDate = &endDate
	}

	input.Symptoms = normalizeSymptomTags(input.Symptoms)
	if len(input.Notes) > MaxPeriodNotesLength {
		input.Notes = input.Notes[:MaxPeriodNotesLength]
	}
	return input, nil
}

func (service *PeriodService) ListEntries(profileID uint) ([]models.PeriodEntry, error) {
	return service.entries.ListByProfileDesc(profileID)
}

func (service *PeriodService) CreateEntry(profileID uint, input PeriodEntryInput) (models.PeriodEntry, error) {
	normalized, err := NormalizePeriodEntryInput(input, service.location)
	if err != nil {
		return models.PeriodEntry{}, err
	}

	entry := models.PeriodEntry{
		ProfileID: profileID,
		StartDate: normalized.StartDate,
		EndDate:   normalized.EndDate,
		Flow:      normalized.Flow,
		Symptoms:  normalized.Symptoms,
		Notes:     normalized.Notes,
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.PeriodEntry{}, fmt.Errorf("%w: %v", ErrPeriodEntryCreateFailed, err)
	}

	if _, err := service.RefreshCycleInfo(profileID); err != nil {
		return models.PeriodEntry{}, err
	}
	return entry, nil
}

func (service *PeriodService) UpdateEntry(profileID uint, entryID uint, input PeriodEntryInput) (models.PeriodEntry, error) {
	normalized, err := NormalizePeriodEntryInput(input, service.location)
	if err != nil {
		return models.PeriodEntry{}, err
	}

	entry, err := service.entries.FindByIDForProfile(entryID, profileID)
	if err != nil {
		return models.PeriodEntry{}, fmt.Errorf("%w: %v", ErrPeriodEntryNotFound, err)
	}

	entry.StartDate = normalized.StartDate
	entry.EndDate = normalized.EndDate
	entry.Flow = normalized.Flow
	entry.Symptoms = normalized.Symptoms
	entry.Notes = normalized.Notes
	if err := service.entries.Save(&entry); err != nil {
		return models.PeriodEntry{}, fmt.Errorf("%w: %v", ErrPeriodEntryUpdateFailed, err)
	}

	if _, err := service.RefreshCycleInfo(profileID); err != nil {
		return models.PeriodEntry{}, err
	}
	return entry, nil
}

func (service *PeriodService) DeleteEntry(profileID uint, entryID uint) error {
	entry, err := service.entries.FindByIDForProfile(entryID, profileID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPeriodEntryNotFound, err)
	}
	if err := service.entries.Delete(&entry); err != nil {
		return fmt.Errorf("%w: %v", ErrPeriodEntryDeleteFailed, err)
	}

	_, err = service.RefreshCycleInfo(profileID)
	return err
}

// RefreshCycleInfo regenerates and persists the cached summary from the
// current entry list. Mutations call this so the cache can never drift
// further than one write behind the history.
func (service *PeriodService) RefreshCycleInfo(profileID uint) (models.CycleInfo, error) {
	entries, err := service.entries.ListByProfileDesc(profileID)
	if err != nil {
		return models.CycleInfo{}, fmt.Errorf("%w: %v", ErrCycleInfoRefreshFailed, err)
	}

	rebuilt := RebuildCycleInfo(profileID, entries, time.Now(), service.location, service.window, service.summary)

	existing, found, err := service.cycles.FindByProfile(profileID)
	if err != nil {
		return models.CycleInfo{}, fmt.Errorf("%w: %v", ErrCycleInfoRefreshFailed, err)
	}
	if found {
		rebuilt.ID = existing.ID
	}
	if err := service.cycles.Upsert(&rebuilt); err != nil {
		return models.CycleInfo{}, fmt.Errorf("%w: %v", ErrCycleInfoRefreshFailed, err)
	}
	return rebuilt, nil
}

// SnapshotCycleInfo returns the cached summary, regenerating it when no
// row exists yet.
func (service *PeriodService) SnapshotCycleInfo(profileID uint) (models.CycleInfo, error) {
	existing, found, err := service.cycles.FindByProfile(profileID)
	if err != nil {
		return models.CycleInfo{}, fmt.Errorf("%w: %v", ErrCycleInfoRefreshFailed, err)
	}
	if found {
		return existing, nil
	}
	return service.RefreshCycleInfo(profileID)
}

func normalizeSymptomTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		cleaned := NormalizeSymptomTag(tag)
		if cleaned == "" {
			continue
		}
		if _, exists := seen[cleaned]; exists {
			continue
		}
		seen[cleaned] = struct{}{}
		normalized = append(normalized, cleaned)
	}
	return normalized
}

// NormalizeSymptomTag lowercases a free-form tag and collapses internal
// whitespace to underscores so "Mood Swings" and "mood_swings" count as
// the same symptom during aggregation.
func NormalizeSymptomTag(raw string) string {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if cleaned == "" {
		return ""
	}
	cleaned = strings.Join(strings.Fields(cleaned), "_")
	if len(cleaned) > MaxSymptomTagLength {
		cleaned = cleaned[:MaxSymptomTagLength]
	}
	return cleaned
}
