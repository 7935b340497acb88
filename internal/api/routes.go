package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	api.Get("/dashboard", handler.GetDashboard)
	api.Get("/calendar/:month", handler.GetCalendarMonth)
	api.Get("/insights", handler.GetInsights)

	profiles := api.Group("/profiles")
	profiles.Get("", handler.ListProfiles)
	profiles.Post("", handler.CreateProfile)

	periods := api.Group("/periods")
	periods.Get("", handler.ListPeriodEntries)
	periods.Post("", handler.CreatePeriodEntry)
	periods.Put("/:id", handler.UpdatePeriodEntry)
	periods.Delete("/:id", handler.DeletePeriodEntry)

	days := api.Group("/days")
	days.Get("", handler.GetDays)
	days.Get("/:date", handler.GetDay)
	days.Post("/:date", handler.UpsertDay)
	days.Delete("/:date", handler.DeleteDay)

	symptoms := api.Group("/symptoms")
	symptoms.Get("/builtin", handler.GetBuiltinSymptoms)
	symptoms.Get("", handler.ListSymptomRecords)
	symptoms.Post("", handler.CreateSymptomRecord)
	symptoms.Delete("/:id", handler.DeleteSymptomRecord)
}
