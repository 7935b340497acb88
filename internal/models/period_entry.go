package models

import "time"

const (
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

// PeriodEntry is one recorded menstrual period. EndDate stays nil while
// the period is still open; when set it is never before StartDate.
type PeriodEntry struct {
	ID        uint       `gorm:"primaryKey"`
	ProfileID uint       `gorm:"not null;index:idx_period_profile_start"`
	StartDate time.Time  `gorm:"type:date;not null;index:idx_period_profile_start"`
	EndDate   *time.Time `gorm:"type:date"`
	Flow      string     `gorm:"not null;default:medium"`
	Symptoms  []string   `gorm:"serializer:json"`
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func IsValidPeriodFlow(flow string) bool {
	switch flow {
	case FlowLight, FlowMedium, FlowHeavy:
		return true
	default:
		return false
	}
}
