package services

import "math"

// CycleWindowPolicy carries the clinical assumptions behind the cycle
// geometry. The 14-day luteal phase and the 5-before/1-after fertile
// window are modeling conventions, not measured values, so they stay
// tunable instead of being buried as literals.
type CycleWindowPolicy struct {
	LutealPhaseDays   int
	FertileDaysBefore int
	FertileDaysAfter  int
	MinCycleLength    int
	MinPeriodLength   int
	MaxPeriodLength   int
}

func DefaultCycleWindowPolicy() CycleWindowPolicy {
	return CycleWindowPolicy{
		LutealPhaseDays:   14,
		FertileDaysBefore: 5,
		FertileDaysAfter:  1,
		MinCycleLength:    15,
		MinPeriodLength:   1,
		MaxPeriodLength:   15,
	}
}

// CycleWindow is the day-in-cycle geometry of a single cycle. All
// indexes are 1-based: day 1 is the first period day.
type CycleWindow struct {
	CycleLength  int
	PeriodLength int
	OvulationDay int
	FertileStart int
	FertileEnd   int
}

// ResolveCycleWindow derives ovulation and fertile-window indexes from
// possibly noisy length inputs. Every output is clamped: ovulation
// never falls inside the period or past the cycle end, and the fertile
// window never leaves the non-period portion of the cycle, so callers
// never need to re-validate the result.
func ResolveCycleWindow(cycleLengthRaw float64, periodLengthRaw float64, policy CycleWindowPolicy) CycleWindow {
	cycleLength := int(math.Round(cycleLengthRaw))
	if cycleLength < policy.MinCycleLength {
		cycleLength = policy.MinCycleLength
	}

	periodLength := int(math.Round(periodLengthRaw))
	if periodLength < policy.MinPeriodLength {
		periodLength = policy.MinPeriodLength
	}
	if periodLength > policy.MaxPeriodLength {
		periodLength = policy.MaxPeriodLength
	}

	ovulationDay := cycleLength - policy.LutealPhaseDays
	ovulationFloor := periodLength + 1
	if cycleLength-1 < ovulationFloor {
		ovulationFloor = cycleLength - 1
	}
	if ovulationDay < ovulationFloor {
		ovulationDay = ovulationFloor
	}
	if ovulationDay > cycleLength-1 {
		ovulationDay = cycleLength - 1
	}

	fertileStart := ovulationDay - policy.FertileDaysBefore
	if fertileStart < periodLength+1 {
		fertileStart = periodLength + 1
	}
	fertileEnd := ovulationDay + policy.FertileDaysAfter
	if fertileEnd > cycleLength-1 {
		fertileEnd = cycleLength - 1
	}

	return CycleWindow{
		CycleLength:  cycleLength,
		PeriodLength: periodLength,
		OvulationDay: ovulationDay,
		FertileStart: fertileStart,
		FertileEnd:   fertileEnd,
	}
}
