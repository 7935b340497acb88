package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-health/selene/internal/services"
)

func (handler *Handler) GetCalendarMonth(c *fiber.Ctx) error {
	profileID, err := profileIDFromQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile id")
	}

	monthDate, err := parseMonthParam(c.Params("month"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month, expected YYYY-MM")
	}

	entries, err := handler.periods.ListEntries(profileID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch period entries")
	}

	info, err := handler.periods.SnapshotCycleInfo(profileID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch cycle summary")
	}

	// The grid spans up to a week either side of the month, so fetch
	// daily entries for the padded range.
	gridStart := monthDate.AddDate(0, 0, -7)
	gridEnd := monthDate.AddDate(0, 1, 7)
	dailyEntries, err := handler.days.FetchEntriesForRange(profileID, gridStart, gridEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch daily entries")
	}

	days := services.BuildCalendarDayStates(
		monthDate,
		handler.weekStartOffset,
		entries,
		&info,
		dailyEntries,
		time.Now(),
		handler.location,
		handler.window,
	)

	return c.JSON(fiber.Map{
		"month": monthDate.Format(monthParamLayout),
		"days":  days,
	})
}
