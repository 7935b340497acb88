package services

import "time"

const MonthGridSize = 42

type MonthGridCell struct {
	Date    time.Time
	DateKey string
	Day     int
	InMonth bool
}

// BuildMonthGrid returns the 42 consecutive dates backing a six-week
// month view. The grid starts at the last week boundary on or before
// the first of the month; weekStartOffset rotates which weekday lands
// in column zero (0 = Sunday, 1 = Monday, ...).
func BuildMonthGrid(monthDate time.Time, weekStartOffset int, location *time.Location) []MonthGridCell {
	if location == nil {
		location = time.UTC
	}
	monthStart := time.Date(monthDate.Year(), monthDate.Month(), 1, 0, 0, 0, 0, location)

	lead := (int(monthStart.Weekday()) - weekStartOffset) % 7
	if lead < 0 {
		lead += 7
	}
	gridStart := monthStart.AddDate(0, 0, -lead)

	cells := make([]MonthGridCell, 0, MonthGridSize)
	for index := 0; index < MonthGridSize; index++ {
		day := gridStart.AddDate(0, 0, index)
		cells = append(cells, MonthGridCell{
			Date:    day,
			DateKey: DateKey(day),
			Day:     day.Day(),
			InMonth: day.Month() == monthStart.Month() && day.Year() == monthStart.Year(),
		})
	}
	return cells
}
