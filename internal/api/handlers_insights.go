package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	profileID, err := profileIDFromQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile id")
	}

	insights, err := handler.insights.BuildInsights(profileID, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build insights")
	}
	return c.JSON(fiber.Map{"insights": insights})
}
