package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-health/selene/internal/models"
	"github.com/selene-health/selene/internal/services"
)

const defaultRecentSymptomLimit = 50

func (handler *Handler) GetBuiltinSymptoms(c *fiber.Ctx) error {
	return c.JSON(models.DefaultBuiltinSymptoms())
}

func (handler *Handler) ListSymptomRecords(c *fiber.Ctx) error {
	profileID, err := profileIDFromQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile id")
	}

	records, err := handler.symptoms.ListRecent(profileID, defaultRecentSymptomLimit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch symptom records")
	}
	return c.JSON(records)
}

func (handler *Handler) CreateSymptomRecord(c *fiber.Ctx) error {
	profileID, err := profileIDFromQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile id")
	}

	payload := symptomPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	recordedAt := time.Time{}
	if payload.RecordedAt != "" {
		parsed, err := time.ParseInLocation(time.RFC3339, payload.RecordedAt, handler.location)
		if err != nil {
			day, dayErr := parseDayParam(payload.RecordedAt, handler.location)
			if dayErr != nil {
				return apiError(c, fiber.StatusBadRequest, "invalid recorded_at timestamp")
			}
			parsed = day
		}
		recordedAt = parsed
	}

	record, err := handler.symptoms.RecordSymptom(profileID, payload.Type, recordedAt)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSymptomTag) {
			return apiError(c, fiber.StatusBadRequest, "invalid symptom tag")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to record symptom")
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) DeleteSymptomRecord(c *fiber.Ctx) error {
	profileID, err := profileIDFromQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile id")
	}

	recordID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}

	if err := handler.symptoms.DeleteRecord(profileID, recordID); err != nil {
		if errors.Is(err, services.ErrSymptomRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "symptom record not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete symptom record")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
