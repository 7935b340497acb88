package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-health/selene/internal/models"
)

type profilePayload struct {
	Name string `json:"name"`
}

func (handler *Handler) ListProfiles(c *fiber.Ctx) error {
	profiles, err := handler.profiles.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch profiles")
	}
	return c.JSON(profiles)
}

func (handler *Handler) CreateProfile(c *fiber.Ctx) error {
	payload := profilePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "profile name is required")
	}

	profile := models.Profile{Name: name}
	if err := handler.profiles.Create(&profile); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create profile")
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
