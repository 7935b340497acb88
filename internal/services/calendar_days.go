package services

import (
	"time"

	"github.com/selene-health/selene/internal/models"
)

type CalendarDayState struct {
	Date        time.Time `json:"date"`
	DateKey     string    `json:"date_key"`
	Day         int       `json:"day"`
	InMonth     bool      `json:"in_month"`
	IsToday     bool      `json:"is_today"`
	IsPeriod    bool      `json:"is_period"`
	IsPredicted bool      `json:"is_predicted"`
	IsFertile   bool      `json:"is_fertile"`
	IsOvulation bool      `json:"is_ovulation"`
	HasEntry    bool      `json:"has_entry"`
}

// BuildCalendarDayStates composes the marker overlay for one rendered
// month. Period markers come from recorded entry ranges; predicted,
// fertile and ovulation markers are the forward-looking overlay derived
// from the CycleInfo snapshot, intentionally independent of the per-day
// historical classifier.
func BuildCalendarDayStates(
	monthDate time.Time,
	weekStartOffset int,
	entries []models.PeriodEntry,
	info *models.CycleInfo,
	dailyEntries []models.DailyEntry,
	now time.Time,
	location *time.Location,
	policy CycleWindowPolicy,
) []CalendarDayState {
	if location == nil {
		location = time.UTC
	}
	cells := BuildMonthGrid(monthDate, weekStartOffset, location)

	periodMap := make(map[string]bool)
	for _, entry := range entries {
		start := DateAtLocation(entry.StartDate, location)
		end := start
		if entry.EndDate != nil && !entry.EndDate.Before(entry.StartDate) {
			end = DateAtLocation(*entry.EndDate, location)
		}
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			periodMap[DateKey(day)] = true
		}
	}

	hasEntryMap := make(map[string]bool, len(dailyEntries))
	for _, entry := range dailyEntries {
		if !DayHasData(entry) {
			continue
		}
		hasEntryMap[DateKey(DateAtLocation(entry.Date, location))] = true
	}

	averages := CycleAveragesFromInfo(info)

	predictedMap := make(map[string]bool)
	if info != nil && info.NextPeriodPredicted != nil {
		predictedStart := DateAtLocation(*info.NextPeriodPredicted, location)
		for offset := 0; offset < averages.PeriodLength; offset++ {
			predictedMap[DateKey(predictedStart.AddDate(0, 0, offset))] = true
		}
	}

	fertileMap := make(map[string]bool)
	ovulationMap := make(map[string]bool)
	if info != nil && info.OvulationPredicted != nil {
		window := ResolveCycleWindow(float64(averages.CycleLength), float64(averages.PeriodLength), policy)
		ovulationDate := DateAtLocation(*info.OvulationPredicted, location)
		ovulationMap[DateKey(ovulationDate)] = true
		for dayIndex := window.FertileStart; dayIndex <= window.FertileEnd; dayIndex++ {
			day := ovulationDate.AddDate(0, 0, dayIndex-window.OvulationDay)
			fertileMap[DateKey(day)] = true
		}
	}

	todayKey := DateKey(DateAtLocation(now, location))

	days := make([]CalendarDayState, 0, len(cells))
	for _, cell := range cells {
		isOvulation := ovulationMap[cell.DateKey]
		isFertile := fertileMap[cell.DateKey]
		if isOvulation {
			isFertile = false
		}
		days = append(days, CalendarDayState{
			Date:        cell.Date,
			DateKey:     cell.DateKey,
			Day:         cell.Day,
			InMonth:     cell.InMonth,
			IsToday:     cell.DateKey == todayKey,
			IsPeriod:    periodMap[cell.DateKey],
			IsPredicted: predictedMap[cell.DateKey],
			IsFertile:   isFertile,
			IsOvulation: isOvulation,
			HasEntry:    hasEntryMap[cell.DateKey],
		})
	}
	return days
}
