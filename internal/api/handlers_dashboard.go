package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-health/selene/internal/models"
	"github.com/selene-health/selene/internal/services"
)

func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	profileID, err := profileIDFromQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile id")
	}

	entries, err := handler.periods.ListEntries(profileID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch period entries")
	}

	info, err := handler.periods.SnapshotCycleInfo(profileID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch cycle summary")
	}

	today := services.DateAtLocation(time.Now(), handler.location)
	averages := services.CycleAveragesFromInfo(&info)
	phase := services.ClassifyPhase(today, entries, averages, handler.window)

	daysUntil := services.DaysUntilNextPeriod(&info, today)
	prediction := predictionView{DaysUntilNextPeriod: daysUntil}
	if daysUntil != nil {
		prediction.Status, prediction.Tier = services.ClassifyPredictionStatus(*daysUntil)
	}

	return c.JSON(dashboardView{
		Date: services.DateKey(today),
		Phase: phaseView{
			Phase: phase,
			Label: services.PhaseLabel(phase),
			Tone:  services.PhaseTone(phase),
		},
		Cycle:      buildCycleInfoView(info),
		Prediction: prediction,
	})
}

func buildCycleInfoView(info models.CycleInfo) cycleInfoView {
	return cycleInfoView{
		AverageCycleLength:  info.AverageCycleLength,
		AveragePeriodLength: info.AveragePeriodLength,
		NextPeriodPredicted: dateKeyOrNil(info.NextPeriodPredicted),
		WindowStart:         dateKeyOrNil(info.NextPeriodWindowStart),
		WindowEnd:           dateKeyOrNil(info.NextPeriodWindowEnd),
		OvulationPredicted:  dateKeyOrNil(info.OvulationPredicted),
		Confidence:          info.PredictionConfidence,
		ConfidenceLabel:     services.ConfidenceLabel(info.PredictionConfidence),
	}
}

func dateKeyOrNil(value *time.Time) *string {
	if value == nil {
		return nil
	}
	key := services.DateKey(*value)
	return &key
}
