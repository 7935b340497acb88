package services

import (
	"sort"
	"time"

	"github.com/selene-health/selene/internal/models"
)

const (
	PhaseMenstrual  = "menstrual"
	PhaseFollicular = "follicular"
	PhaseFertile    = "fertile"
	PhaseOvulation  = "ovulation"
	PhaseLuteal     = "luteal"
	PhaseUnknown    = "unknown"
)

// CycleAverages is the fallback used when a cycle has no recorded
// neighbor (cycle length) or no recorded end date (period length).
type CycleAverages struct {
	CycleLength  int
	PeriodLength int
}

func DefaultCycleAverages() CycleAverages {
	return CycleAverages{
		CycleLength:  models.DefaultCycleLength,
		PeriodLength: models.DefaultPeriodLength,
	}
}

func CycleAveragesFromInfo(info *models.CycleInfo) CycleAverages {
	averages := DefaultCycleAverages()
	if info == nil {
		return averages
	}
	if info.AverageCycleLength > 0 {
		averages.CycleLength = info.AverageCycleLength
	}
	if info.AveragePeriodLength > 0 {
		averages.PeriodLength = info.AveragePeriodLength
	}
	return averages
}

// SortPeriodEntriesDesc orders entries most-recent-first, the order
// ClassifyPhase expects. Repositories already return entries this way;
// callers holding slices from elsewhere sort them here first.
func SortPeriodEntriesDesc(entries []models.PeriodEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].StartDate.After(entries[j].StartDate)
	})
}

// ClassifyPhase maps one calendar date onto a cycle phase. Entries must
// be sorted by start date descending. A date before all recorded
// history, or an empty history, classifies as unknown.
//
// The decision order is deliberate: the period and the single ovulation
// day are narrower claims than the fertile band, so they win first.
func ClassifyPhase(day time.Time, entries []models.PeriodEntry, averages CycleAverages, policy CycleWindowPolicy) string {
	if len(entries) == 0 {
		return PhaseUnknown
	}

	location := day.Location()
	target := DateAtLocation(day, location)

	activeIndex := -1
	for index, entry := range entries {
		start := DateAtLocation(entry.StartDate, location)
		if !start.After(target) {
			activeIndex = index
			break
		}
	}
	if activeIndex < 0 {
		return PhaseUnknown
	}

	active := entries[activeIndex]
	cycleStart := DateAtLocation(active.StartDate, location)

	cycleLength := averages.CycleLength
	if activeIndex > 0 {
		gap := DayDiff(entries[activeIndex-1].StartDate, cycleStart)
		if gap > 0 {
			cycleLength = gap
		}
	}

	periodLength := averages.PeriodLength
	if active.EndDate != nil {
		recorded := DayDiff(*active.EndDate, cycleStart) + 1
		if recorded < policy.MinPeriodLength {
			recorded = policy.MinPeriodLength
		}
		if recorded > policy.MaxPeriodLength {
			recorded = policy.MaxPeriodLength
		}
		periodLength = recorded
	}

	window := ResolveCycleWindow(float64(cycleLength), float64(periodLength), policy)
	dayInCycle := DayDiff(target, cycleStart) + 1

	switch {
	case dayInCycle <= window.PeriodLength:
		return PhaseMenstrual
	case dayInCycle == window.OvulationDay:
		return PhaseOvulation
	case dayInCycle >= window.FertileStart && dayInCycle <= window.FertileEnd:
		return PhaseFertile
	case dayInCycle < window.OvulationDay:
		return PhaseFollicular
	default:
		return PhaseLuteal
	}
}

func PhaseLabel(phase string) string {
	switch phase {
	case PhaseMenstrual:
		return "Period"
	case PhaseFollicular:
		return "Follicular"
	case PhaseFertile:
		return "Fertile window"
	case PhaseOvulation:
		return "Ovulation"
	case PhaseLuteal:
		return "Luteal"
	default:
		return "Unknown"
	}
}

// PhaseTone names the color family the rendering layer uses for a
// phase; the palette itself lives outside this service.
func PhaseTone(phase string) string {
	switch phase {
	case PhaseMenstrual:
		return "rose"
	case PhaseFollicular:
		return "sky"
	case PhaseFertile:
		return "teal"
	case PhaseOvulation:
		return "violet"
	case PhaseLuteal:
		return "amber"
	default:
		return "neutral"
	}
}
