package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-health/selene/internal/services"
)

func (handler *Handler) ListPeriodEntries(c *fiber.Ctx) error {
	profileID, err := profileIDFromQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile id")
	}

	entries, err := handler.periods.ListEntries(profileID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch period entries")
	}
	return c.JSON(entries)
}

func (handler *Handler) CreatePeriodEntry(c *fiber.Ctx) error {
	profileID, err := profileIDFromQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile id")
	}

	input, err := handler.parsePeriodPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entry, err := handler.periods.CreateEntry(profileID, input)
	if err != nil {
		return periodServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) UpdatePeriodEntry(c *fiber.Ctx) error {
	profileID, err := profileIDFromQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile id")
	}

	entryID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	input, err := handler.parsePeriodPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entry, err := handler.periods.UpdateEntry(profileID, entryID, input)
	if err != nil {
		return periodServiceError(c, err)
	}
	return c.JSON(entry)
}

func (handler *Handler) DeletePeriodEntry(c *fiber.Ctx) error {
	profileID, err := profileIDFromQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile id")
	}

	entryID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	if err := handler.periods.DeleteEntry(profileID, entryID); err != nil {
		return periodServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) parsePeriodPayload(c *fiber.Ctx) (services.PeriodEntryInput, error) {
	payload := periodPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.PeriodEntryInput{}, errors.New("invalid request body")
	}

	startDate, err := parseDayParam(payload.StartDate, handler.location)
	if err != nil {
		return services.PeriodEntryInput{}, errors.New("invalid start date")
	}

	var endDate *time.Time
	if payload.EndDate != "" {
		parsed, err := parseDayParam(payload.EndDate, handler.location)
		if err != nil {
			return services.PeriodEntryInput{}, errors.New("invalid end date")
		}
		endDate = &parsed
	}

	return services.PeriodEntryInput{
		StartDate: startDate,
		EndDate:   endDate,
		Flow:      payload.Flow,
		Symptoms:  payload.Symptoms,
		Notes:     payload.Notes,
	}, nil
}

func periodServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidPeriodFlow),
		errors.Is(err, services.ErrPeriodEndBeforeStart):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrPeriodEntryNotFound):
		return apiError(c, fiber.StatusNotFound, "period entry not found")
	default:
		return apiError(c, fiber.StatusInternalServerError, "period entry operation failed")
	}
}
