package services

import (
	"time"

	"github.com/selene-health/selene/internal/models"
)

const (
	PredictionOverdue  = "overdue"
	PredictionToday    = "today"
	PredictionSoon     = "soon"
	PredictionUpcoming = "upcoming"
)

const (
	TierAttention = "attention"
	TierNormal    = "normal"
)

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

const soonThresholdDays = 3

// DaysUntilNextPeriod returns nil when no prediction exists; otherwise
// the signed day count from today to the predicted start.
func DaysUntilNextPeriod(info *models.CycleInfo, today time.Time) *int {
	if info == nil || info.NextPeriodPredicted == nil {
		return nil
	}
	days := DayDiff(*info.NextPeriodPredicted, today)
	return &days
}

// ClassifyPredictionStatus buckets a days-until value and pairs it with
// a severity tier. Overdue, today and soon all demand attention.
func ClassifyPredictionStatus(daysUntil int) (string, string) {
	switch {
	case daysUntil < 0:
		return PredictionOverdue, TierAttention
	case daysUntil == 0:
		return PredictionToday, TierAttention
	case daysUntil <= soonThresholdDays:
		return PredictionSoon, TierAttention
	default:
		return PredictionUpcoming, TierNormal
	}
}

// ConfidenceLabel buckets a stored confidence score. A missing score
// yields an empty label, not "low": no claim is different from a weak one.
func ConfidenceLabel(score *float64) string {
	if score == nil {
		return ""
	}
	switch {
	case *score >= 0.75:
		return ConfidenceHigh
	case *score >= 0.5:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
