package services

import (
	"testing"
	"time"

	"github.com/selene-health/selene/internal/models"
)

func TestRebuildCycleInfoEmptyHistory(t *testing.T) {
	t.Parallel()

	info := RebuildCycleInfo(1, nil, mustParseDay(t, "2025-05-01"), time.UTC, DefaultCycleWindowPolicy(), DefaultCycleSummaryPolicy())
	if info.AverageCycleLength != models.DefaultCycleLength {
		t.Fatalf("expected default cycle length, got %d", info.AverageCycleLength)
	}
	if info.AveragePeriodLength != models.DefaultPeriodLength {
		t.Fatalf("expected default period length, got %d", info.AveragePeriodLength)
	}
	if info.NextPeriodPredicted != nil || info.OvulationPredicted != nil || info.PredictionConfidence != nil {
		t.Fatalf("expected no predictions on empty history: %+v", info)
	}
}

func TestRebuildCycleInfoRegularHistory(t *testing.T) {
	t.Parallel()

	entries := []models.PeriodEntry{
		makePeriodEntry(t, "2025-01-01", "2025-01-04"),
		makePeriodEntry(t, "2025-01-29", "2025-02-01"),
		makePeriodEntry(t, "2025-02-26", "2025-03-01"),
	}
	now := mustParseDay(t, "2025-03-05")

	info := RebuildCycleInfo(7, entries, now, time.UTC, DefaultCycleWindowPolicy(), DefaultCycleSummaryPolicy())
	if info.ProfileID != 7 {
		t.Fatalf("expected profile id 7, got %d", info.ProfileID)
	}
	if info.AverageCycleLength != 28 {
		t.Fatalf("expected average cycle length 28, got %d", info.AverageCycleLength)
	}
	if info.AveragePeriodLength != 4 {
		t.Fatalf("expected average period length 4, got %d", info.AveragePeriodLength)
	}

	if info.NextPeriodPredicted == nil || DateKey(*info.NextPeriodPredicted) != "2025-03-26" {
		t.Fatalf("unexpected next period prediction: %+v", info.NextPeriodPredicted)
	}
	if info.OvulationPredicted == nil || DateKey(*info.OvulationPredicted) != "2025-03-12" {
		t.Fatalf("unexpected ovulation prediction: %+v", info.OvulationPredicted)
	}

	if info.PredictionConfidence == nil {
		t.Fatalf("expected confidence with two completed cycles")
	}
	if *info.PredictionConfidence <= 0 || *info.PredictionConfidence > 1 {
		t.Fatalf("confidence out of range: %.2f", *info.PredictionConfidence)
	}

	// Perfectly regular 28-day history: the window collapses to the
	// minimum one-day spread.
	if info.NextPeriodWindowStart == nil || info.NextPeriodWindowEnd == nil {
		t.Fatalf("expected prediction window with two completed cycles")
	}
	if DateKey(*info.NextPeriodWindowStart) != "2025-03-25" || DateKey(*info.NextPeriodWindowEnd) != "2025-03-27" {
		t.Fatalf("unexpected window [%s, %s]",
			DateKey(*info.NextPeriodWindowStart), DateKey(*info.NextPeriodWindowEnd))
	}
}

func TestRebuildCycleInfoSingleEntry(t *testing.T) {
	t.Parallel()

	entries := []models.PeriodEntry{makePeriodEntry(t, "2025-04-01", "2025-04-05")}
	info := RebuildCycleInfo(1, entries, mustParseDay(t, "2025-04-10"), time.UTC, DefaultCycleWindowPolicy(), DefaultCycleSummaryPolicy())

	if info.AverageCycleLength != models.DefaultCycleLength {
		t.Fatalf("expected fallback cycle length, got %d", info.AverageCycleLength)
	}
	if info.NextPeriodPredicted == nil || DateKey(*info.NextPeriodPredicted) != "2025-04-29" {
		t.Fatalf("unexpected prediction from single entry: %+v", info.NextPeriodPredicted)
	}
	if info.PredictionConfidence != nil {
		t.Fatalf("confidence requires at least two completed cycles")
	}
	if info.NextPeriodWindowStart != nil || info.NextPeriodWindowEnd != nil {
		t.Fatalf("window requires at least two completed cycles")
	}
}

func TestRebuildCycleInfoIrregularHistoryWidensWindow(t *testing.T) {
	t.Parallel()

	entries := []models.PeriodEntry{
		makePeriodEntry(t, "2025-01-01", ""),
		makePeriodEntry(t, "2025-01-23", ""),
		makePeriodEntry(t, "2025-02-27", ""),
		makePeriodEntry(t, "2025-03-24", ""),
	}
	info := RebuildCycleInfo(1, entries, mustParseDay(t, "2025-03-30"), time.UTC, DefaultCycleWindowPolicy(), DefaultCycleSummaryPolicy())

	if info.NextPeriodWindowStart == nil || info.NextPeriodWindowEnd == nil {
		t.Fatalf("expected prediction window")
	}
	spread := DayDiff(*info.NextPeriodWindowEnd, *info.NextPeriodWindowStart) / 2
	if spread < 2 {
		t.Fatalf("irregular history should widen the window, spread=%d", spread)
	}
	if spread > DefaultCycleSummaryPolicy().MaxWindowSpreadDays {
		t.Fatalf("window spread %d exceeds cap", spread)
	}

	regular := RebuildCycleInfo(1, []models.PeriodEntry{
		makePeriodEntry(t, "2025-01-01", ""),
		makePeriodEntry(t, "2025-01-29", ""),
		makePeriodEntry(t, "2025-02-26", ""),
	}, mustParseDay(t, "2025-03-01"), time.UTC, DefaultCycleWindowPolicy(), DefaultCycleSummaryPolicy())

	if regular.PredictionConfidence == nil || info.PredictionConfidence == nil {
		t.Fatalf("expected confidence on both histories")
	}
	if *info.PredictionConfidence >= *regular.PredictionConfidence {
		t.Fatalf("irregular history must score lower confidence: %.2f vs %.2f",
			*info.PredictionConfidence, *regular.PredictionConfidence)
	}
}

func TestRebuildCycleInfoUnsortedEntries(t *testing.T) {
	t.Parallel()

	entries := []models.PeriodEntry{
		makePeriodEntry(t, "2025-02-26", ""),
		makePeriodEntry(t, "2025-01-01", ""),
		makePeriodEntry(t, "2025-01-29", ""),
	}
	info := RebuildCycleInfo(1, entries, mustParseDay(t, "2025-03-01"), time.UTC, DefaultCycleWindowPolicy(), DefaultCycleSummaryPolicy())
	if info.AverageCycleLength != 28 {
		t.Fatalf("expected order-independent rebuild, got cycle length %d", info.AverageCycleLength)
	}
	if info.NextPeriodPredicted == nil || DateKey(*info.NextPeriodPredicted) != "2025-03-26" {
		t.Fatalf("unexpected prediction: %+v", info.NextPeriodPredicted)
	}
}
