package models

import "time"

const FlowNone = "none"

const (
	DischargeNone     = "none"
	DischargeDry      = "dry"
	DischargeSticky   = "sticky"
	DischargeCreamy   = "creamy"
	DischargeEggWhite = "egg_white"
	DischargeWatery   = "watery"
)

const (
	MaxCrampsSeverity = 3
	MinWellnessScore  = 1
	MaxWellnessScore  = 5
)

// DailyEntry is the per-day wellness log, at most one per profile per
// calendar day. Mood, SleepQuality and EnergyLevel are nil when the
// user did not rate them.
type DailyEntry struct {
	ID                uint      `gorm:"primaryKey"`
	ProfileID         uint      `gorm:"not null;uniqueIndex:uidx_daily_profile_date"`
	Date              time.Time `gorm:"type:date;not null;uniqueIndex:uidx_daily_profile_date"`
	Flow              string    `gorm:"not null;default:none"`
	CrampsSeverity    int       `gorm:"not null;default:0"`
	Mood              *int
	SleepQuality      *int
	EnergyLevel       *int
	DischargeType     string `gorm:"not null;default:none"`
	Spotting          bool   `gorm:"not null;default:false"`
	BirthControlTaken *bool
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func IsValidDailyFlow(flow string) bool {
	return flow == FlowNone || IsValidPeriodFlow(flow)
}

func IsValidDischargeType(value string) bool {
	switch value {
	case DischargeNone, DischargeDry, DischargeSticky, DischargeCreamy, DischargeEggWhite, DischargeWatery:
		return true
	default:
		return false
	}
}
