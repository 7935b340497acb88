package models

import "time"

// CycleInfo is the derived per-profile cycle summary. It is a cache:
// every field can be regenerated from the PeriodEntry history, and the
// aggregator rewrites the whole row whenever entries change.
type CycleInfo struct {
	ID                    uint `gorm:"primaryKey"`
	ProfileID             uint `gorm:"not null;uniqueIndex"`
	AverageCycleLength    int  `gorm:"not null;default:28"`
	AveragePeriodLength   int  `gorm:"not null;default:5"`
	NextPeriodPredicted   *time.Time `gorm:"type:date"`
	NextPeriodWindowStart *time.Time `gorm:"type:date"`
	NextPeriodWindowEnd   *time.Time `gorm:"type:date"`
	OvulationPredicted    *time.Time `gorm:"type:date"`
	PredictionConfidence  *float64
	UpdatedAt             time.Time
}
