package api

import (
	"time"

	"github.com/selene-health/selene/internal/db"
	"github.com/selene-health/selene/internal/services"
)

type Handler struct {
	profiles        *db.ProfileRepository
	periods         *services.PeriodService
	days            *services.DayService
	symptoms        *services.SymptomService
	insights        *services.InsightService
	window          services.CycleWindowPolicy
	location        *time.Location
	weekStartOffset int
}

func NewHandler(
	profiles *db.ProfileRepository,
	periods *services.PeriodService,
	days *services.DayService,
	symptoms *services.SymptomService,
	insights *services.InsightService,
	window services.CycleWindowPolicy,
	location *time.Location,
	weekStartOffset int,
) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		profiles:        profiles,
		periods:         periods,
		days:            days,
		symptoms:        symptoms,
		insights:        insights,
		window:          window,
		location:        location,
		weekStartOffset: weekStartOffset,
	}
}
