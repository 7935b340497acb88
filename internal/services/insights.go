package services

import (
	"sort"
	"strings"
	"time"

	"github.com/selene-health/selene/internal/models"
)

// InsightThresholds are the support requirements a symptom/phase pair
// must clear before it is reported. Each one guards against a specific
// small-sample failure: too little classified history, a rarely logged
// symptom, a barely observed phase, or a ratio built on a handful of
// hits. Loosening them trades noise for recall.
type InsightThresholds struct {
	WindowDays           int
	MinClassifiedDays    int
	MinSymptomDaysTotal  int
	MinPhaseDays         int
	MinPhaseSymptomCount int
	MinLift              float64
	MaxResults           int
}

func DefaultInsightThresholds() InsightThresholds {
	return InsightThresholds{
		WindowDays:           120,
		MinClassifiedDays:    30,
		MinSymptomDaysTotal:  5,
		MinPhaseDays:         8,
		MinPhaseSymptomCount: 3,
		MinLift:              1.5,
		MaxResults:           4,
	}
}

type SymptomPhaseInsight struct {
	Symptom      string  `json:"symptom"`
	Phase        string  `json:"phase"`
	PhaseLabel   string  `json:"phase_label"`
	Lift         float64 `json:"lift"`
	CountInPhase int     `json:"count_in_phase"`
	PhaseDays    int     `json:"phase_days"`
}

// BuildSymptomPhaseInsights mines a trailing window of symptom records
// for symptoms that are reported disproportionately often in one cycle
// phase. Rates are Laplace-smoothed (+1/+2) so a rate never divides by
// zero and a pair seen twice cannot masquerade as a 100% correlation.
// The result is sorted by lift descending and capped at MaxResults.
func BuildSymptomPhaseInsights(
	entries []models.PeriodEntry,
	records []models.SymptomRecord,
	now time.Time,
	averages CycleAverages,
	policy CycleWindowPolicy,
	thresholds InsightThresholds,
) []SymptomPhaseInsight {
	if len(entries) == 0 || len(records) == 0 {
		return []SymptomPhaseInsight{}
	}

	location := now.Location()
	windowEnd := DateAtLocation(now, location)
	windowStart := windowEnd.AddDate(0, 0, -(thresholds.WindowDays - 1))

	// Distinct symptom types per day; same-type repeats within a day
	// count once.
	symptomsByDay := make(map[string]map[string]struct{})
	for _, record := range records {
		if record.RecordedAt.IsZero() {
			continue
		}
		symptomType := strings.ToLower(strings.TrimSpace(record.Type))
		if symptomType == "" {
			continue
		}
		day := DateAtLocation(record.RecordedAt, location)
		if day.Before(windowStart) || day.After(windowEnd) {
			continue
		}
		key := DateKey(day)
		if symptomsByDay[key] == nil {
			symptomsByDay[key] = make(map[string]struct{})
		}
		symptomsByDay[key][symptomType] = struct{}{}
	}

	daysByPhase := make(map[string]int)
	symptomDaysByType := make(map[string]map[string]int)
	symptomDaysTotal := make(map[string]int)
	totalClassifiedDays := 0

	for day := windowStart; !day.After(windowEnd); day = day.AddDate(0, 0, 1) {
		phase := ClassifyPhase(day, entries, averages, policy)
		if phase == PhaseUnknown {
			continue
		}
		daysByPhase[phase]++
		totalClassifiedDays++

		for symptomType := range symptomsByDay[DateKey(day)] {
			if symptomDaysByType[symptomType] == nil {
				symptomDaysByType[symptomType] = make(map[string]int)
			}
			symptomDaysByType[symptomType][phase]++
			symptomDaysTotal[symptomType]++
		}
	}

	if totalClassifiedDays < thresholds.MinClassifiedDays {
		return []SymptomPhaseInsight{}
	}

	insights := make([]SymptomPhaseInsight, 0)
	for symptomType, totalDays := range symptomDaysTotal {
		if totalDays < thresholds.MinSymptomDaysTotal {
			continue
		}
		overallRate := float64(totalDays+1) / float64(totalClassifiedDays+2)

		for phase, countInPhase := range symptomDaysByType[symptomType] {
			phaseDays := daysByPhase[phase]
			if phaseDays < thresholds.MinPhaseDays || countInPhase < thresholds.MinPhaseSymptomCount {
				continue
			}
			phaseRate := float64(countInPhase+1) / float64(phaseDays+2)
			lift := phaseRate / overallRate
			if lift < thresholds.MinLift {
				continue
			}
			insights = append(insights, SymptomPhaseInsight{
				Symptom:      symptomType,
				Phase:        phase,
				PhaseLabel:   PhaseLabel(phase),
				Lift:         lift,
				CountInPhase: countInPhase,
				PhaseDays:    phaseDays,
			})
		}
	}

	sort.Slice(insights, func(i, j int) bool {
		if insights[i].Lift != insights[j].Lift {
			return insights[i].Lift > insights[j].Lift
		}
		if insights[i].Symptom != insights[j].Symptom {
			return insights[i].Symptom < insights[j].Symptom
		}
		return insights[i].Phase < insights[j].Phase
	})

	if thresholds.MaxResults > 0 && len(insights) > thresholds.MaxResults {
		insights = insights[:thresholds.MaxResults]
	}
	return insights
}
