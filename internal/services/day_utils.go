package services

import (
	"strings"
	"time"

	"github.com/selene-health/selene/internal/models"
)

const dayKeyLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

func AddDays(day time.Time, offset int) time.Time {
	return day.AddDate(0, 0, offset)
}

// DayDiff returns the number of whole calendar days from b to a,
// negative when a precedes b. Both values are reduced to their calendar
// date first so DST transitions cannot skew the count.
func DayDiff(a time.Time, b time.Time) int {
	aYear, aMonth, aDay := a.Date()
	bYear, bMonth, bDay := b.Date()
	aDate := time.Date(aYear, aMonth, aDay, 0, 0, 0, 0, time.UTC)
	bDate := time.Date(bYear, bMonth, bDay, 0, 0, 0, 0, time.UTC)
	return int(aDate.Sub(bDate).Hours() / 24)
}

func DateKey(value time.Time) string {
	return value.Format(dayKeyLayout)
}

func DayHasData(entry models.DailyEntry) bool {
	if entry.Flow != "" && entry.Flow != models.FlowNone {
		return true
	}
	if entry.CrampsSeverity > 0 || entry.Spotting {
		return true
	}
	if entry.Mood != nil || entry.SleepQuality != nil || entry.EnergyLevel != nil {
		return true
	}
	if entry.DischargeType != "" && entry.DischargeType != models.DischargeNone {
		return true
	}
	if entry.BirthControlTaken != nil {
		return true
	}
	return strings.TrimSpace(entry.Notes) != ""
}
