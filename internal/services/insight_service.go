package services

import (
	"fmt"
	"time"

	"github.com/selene-health/selene/internal/models"
)

type InsightPeriodReader interface {
	ListByProfileDesc(profileID uint) ([]models.PeriodEntry, error)
}

type InsightSymptomReader interface {
	ListByProfileSince(profileID uint, since time.Time) ([]models.SymptomRecord, error)
}

type InsightCycleReader interface {
	FindByProfile(profileID uint) (models.CycleInfo, bool, error)
}

// InsightService wires the pure correlator to the entry store.
type InsightService struct {
	periods    InsightPeriodReader
	symptoms   InsightSymptomReader
	cycles     InsightCycleReader
	window     CycleWindowPolicy
	thresholds InsightThresholds
	location   *time.Location
}

func NewInsightService(
	periods InsightPeriodReader,
	symptoms InsightSymptomReader,
	cycles InsightCycleReader,
	window CycleWindowPolicy,
	thresholds InsightThresholds,
	location *time.Location,
) *InsightService {
	if location == nil {
		location = time.UTC
	}
	return &InsightService{
		periods:    periods,
		symptoms:   symptoms,
		cycles:     cycles,
		window:     window,
		thresholds: thresholds,
		location:   location,
	}
}

func (service *InsightService) BuildInsights(profileID uint, now time.Time) ([]SymptomPhaseInsight, error) {
	entries, err := service.periods.ListByProfileDesc(profileID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSymptomRecordLoadFailed, err)
	}

	windowEnd := DateAtLocation(now, service.location)
	windowStart := windowEnd.AddDate(0, 0, -(service.thresholds.WindowDays - 1))
	records, err := service.symptoms.ListByProfileSince(profileID, windowStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSymptomRecordLoadFailed, err)
	}

	averages := DefaultCycleAverages()
	if info, found, err := service.cycles.FindByProfile(profileID); err == nil && found {
		averages = CycleAveragesFromInfo(&info)
	}

	localNow := now.In(service.location)
	return BuildSymptomPhaseInsights(entries, records, localNow, averages, service.window, service.thresholds), nil
}
