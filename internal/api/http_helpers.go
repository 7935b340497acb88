package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

const monthParamLayout = "2006-01"
const dayParamLayout = "2006-01-02"

var errEmptyDayParam = errors.New("empty day parameter")

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// profileIDFromQuery resolves the ?profile= query parameter, defaulting
// to the first profile so single-profile installs never pass it.
func profileIDFromQuery(c *fiber.Ctx) (uint, error) {
	raw := c.Query("profile", "1")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid profile id")
	}
	return uint(parsed), nil
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(parsed), nil
}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errEmptyDayParam
	}
	return time.ParseInLocation(dayParamLayout, raw, location)
}

func parseMonthParam(raw string, location *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errEmptyDayParam
	}
	return time.ParseInLocation(monthParamLayout, raw, location)
}
