package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/selene-health/selene/internal/api"
	"github.com/selene-health/selene/internal/config"
	"github.com/selene-health/selene/internal/db"
	"github.com/selene-health/selene/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	location := mustLoadLocation(cfg.App.Timezone)
	time.Local = location

	database, err := db.OpenSQLite(cfg.Database.Path)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	repositories := db.NewRepositories(database)
	if _, err := repositories.Profiles.EnsureDefault(cfg.App.DefaultProfileName); err != nil {
		log.Fatalf("default profile init failed: %v", err)
	}

	windowPolicy := services.DefaultCycleWindowPolicy()
	windowPolicy.LutealPhaseDays = cfg.Cycle.LutealPhaseDays
	windowPolicy.FertileDaysBefore = cfg.Cycle.FertileDaysBefore
	windowPolicy.FertileDaysAfter = cfg.Cycle.FertileDaysAfter

	summaryPolicy := services.DefaultCycleSummaryPolicy()
	summaryPolicy.RecentCycles = cfg.Cycle.RecentCycles

	thresholds := services.DefaultInsightThresholds()
	thresholds.WindowDays = cfg.Insights.WindowDays
	thresholds.MinClassifiedDays = cfg.Insights.MinClassifiedDays
	thresholds.MinLift = cfg.Insights.MinLift
	thresholds.MaxResults = cfg.Insights.MaxInsights

	periodService := services.NewPeriodService(
		repositories.PeriodEntries,
		repositories.CycleInfos,
		windowPolicy,
		summaryPolicy,
		location,
	)
	dayService := services.NewDayService(repositories.DailyEntries, location)
	symptomService := services.NewSymptomService(repositories.SymptomRecords, location)
	insightService := services.NewInsightService(
		repositories.PeriodEntries,
		repositories.SymptomRecords,
		repositories.CycleInfos,
		windowPolicy,
		thresholds,
		location,
	)

	handler := api.NewHandler(
		repositories.Profiles,
		periodService,
		dayService,
		symptomService,
		insightService,
		windowPolicy,
		location,
		cfg.App.WeekStartOffset,
	)

	app := fiber.New(fiber.Config{
		AppName:               "Selene",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Selene listening on http://0.0.0.0:%d (db: %s, tz: %s)", cfg.Server.Port, cfg.Database.Path, location.String())
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid timezone %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
