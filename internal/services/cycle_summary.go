package services

import (
	"math"
	"sort"
	"time"

	"github.com/selene-health/selene/internal/models"
)

// CycleSummaryPolicy shapes how CycleInfo is regenerated from the raw
// period history. RecentCycles bounds how far back the averages look so
// an old irregular stretch stops influencing predictions.
type CycleSummaryPolicy struct {
	RecentCycles           int
	MinCyclesForConfidence int
	MaxWindowSpreadDays    int
}

func DefaultCycleSummaryPolicy() CycleSummaryPolicy {
	return CycleSummaryPolicy{
		RecentCycles:           6,
		MinCyclesForConfidence: 2,
		MaxWindowSpreadDays:    5,
	}
}

// RebuildCycleInfo regenerates the per-profile cycle summary from the
// full period history. CycleInfo is only a cache: this function is the
// single source of truth for every field in it, and it is safe to call
// on any snapshot of entries regardless of order.
func RebuildCycleInfo(
	profileID uint,
	entries []models.PeriodEntry,
	now time.Time,
	location *time.Location,
	windowPolicy CycleWindowPolicy,
	summaryPolicy CycleSummaryPolicy,
) models.CycleInfo {
	info := models.CycleInfo{
		ProfileID:           profileID,
		AverageCycleLength:  models.DefaultCycleLength,
		AveragePeriodLength: models.DefaultPeriodLength,
	}
	if len(entries) == 0 {
		return info
	}
	if location == nil {
		location = time.UTC
	}

	sorted := make([]models.PeriodEntry, 0, len(entries))
	sorted = append(sorted, entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})

	starts := make([]time.Time, 0, len(sorted))
	for _, entry := range sorted {
		starts = append(starts, DateAtLocation(entry.StartDate, location))
	}

	lengths := make([]int, 0, len(starts))
	for index := 1; index < len(starts); index++ {
		gap := DayDiff(starts[index], starts[index-1])
		if gap > 0 {
			lengths = append(lengths, gap)
		}
	}
	recentLengths := tailInts(lengths, summaryPolicy.RecentCycles)
	if len(recentLengths) > 0 {
		info.AverageCycleLength = int(averageInts(recentLengths) + 0.5)
	}

	periodLengths := make([]int, 0, len(sorted))
	for _, entry := range sorted {
		if entry.EndDate == nil {
			continue
		}
		length := DayDiff(*entry.EndDate, entry.StartDate) + 1
		if length < windowPolicy.MinPeriodLength {
			length = windowPolicy.MinPeriodLength
		}
		if length > windowPolicy.MaxPeriodLength {
			length = windowPolicy.MaxPeriodLength
		}
		periodLengths = append(periodLengths, length)
	}
	recentPeriodLengths := tailInts(periodLengths, summaryPolicy.RecentCycles)
	if len(recentPeriodLengths) > 0 {
		info.AveragePeriodLength = int(averageInts(recentPeriodLengths) + 0.5)
	}

	lastStart := starts[len(starts)-1]
	nextPredicted := AddDays(lastStart, info.AverageCycleLength)
	info.NextPeriodPredicted = &nextPredicted

	ovulationPredicted := AddDays(nextPredicted, -windowPolicy.LutealPhaseDays)
	info.OvulationPredicted = &ovulationPredicted

	if len(recentLengths) >= summaryPolicy.MinCyclesForConfidence {
		spreadDays := stddevInts(recentLengths)

		completeness := float64(len(recentLengths)) / float64(summaryPolicy.RecentCycles)
		if completeness > 1 {
			completeness = 1
		}
		regularity := 1 / (1 + spreadDays/3)
		confidence := math.Round(completeness*regularity*100) / 100
		info.PredictionConfidence = &confidence

		spread := int(spreadDays + 0.5)
		if spread < 1 {
			spread = 1
		}
		if spread > summaryPolicy.MaxWindowSpreadDays {
			spread = summaryPolicy.MaxWindowSpreadDays
		}
		windowStart := AddDays(nextPredicted, -spread)
		windowEnd := AddDays(nextPredicted, spread)
		info.NextPeriodWindowStart = &windowStart
		info.NextPeriodWindowEnd = &windowEnd
	}

	return info
}

func tailInts(values []int, n int) []int {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

func averageInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}

func stddevInts(values []int) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := averageInts(values)
	var sumSquares float64
	for _, value := range values {
		delta := float64(value) - mean
		sumSquares += delta * delta
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}
