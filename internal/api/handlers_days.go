package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-health/selene/internal/services"
)

func (handler *Handler) GetDays(c *fiber.Ctx) error {
	profileID, err := profileIDFromQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile id")
	}

	fromRaw := c.Query("from")
	toRaw := c.Query("to")
	if fromRaw == "" && toRaw == "" {
		entries, err := handler.days.FetchAllEntries(profileID)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to fetch daily entries")
		}
		return c.JSON(entries)
	}

	from, err := parseDayParam(fromRaw, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := parseDayParam(toRaw, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}
	if to.Before(from) {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	entries, err := handler.days.FetchEntriesForRange(profileID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch daily entries")
	}
	return c.JSON(entries)
}

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	profileID, err := profileIDFromQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile id")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.days.FetchEntryByDate(profileID, day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch day")
	}
	return c.JSON(entry)
}

func (handler *Handler) UpsertDay(c *fiber.Ctx) error {
	profileID, err := profileIDFromQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile id")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	payload := dayPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := handler.days.UpsertEntry(profileID, day, services.DailyEntryInput{
		Flow:              payload.Flow,
		CrampsSeverity:    payload.CrampsSeverity,
		Mood:              payload.Mood,
		SleepQuality:      payload.SleepQuality,
		EnergyLevel:       payload.EnergyLevel,
		DischargeType:     payload.DischargeType,
		Spotting:          payload.Spotting,
		BirthControlTaken: payload.BirthControlTaken,
		Notes:             payload.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDailyFlow),
			errors.Is(err, services.ErrInvalidDischargeType),
			errors.Is(err, services.ErrInvalidWellnessScore):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save day")
		}
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteDay(c *fiber.Ctx) error {
	profileID, err := profileIDFromQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile id")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	if err := handler.days.DeleteEntry(profileID, day); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete day")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
