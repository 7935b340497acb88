package api

type periodPayload struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Flow      string   `json:"flow"`
	Symptoms  []string `json:"symptoms"`
	Notes     string   `json:"notes"`
}

type dayPayload struct {
	Flow              string `json:"flow"`
	CrampsSeverity    int    `json:"cramps_severity"`
	Mood              *int   `json:"mood"`
	SleepQuality      *int   `json:"sleep_quality"`
	EnergyLevel       *int   `json:"energy_level"`
	DischargeType     string `json:"discharge_type"`
	Spotting          bool   `json:"spotting"`
	BirthControlTaken *bool  `json:"birth_control_taken"`
	Notes             string `json:"notes"`
}

type symptomPayload struct {
	Type       string `json:"type"`
	RecordedAt string `json:"recorded_at"`
}

type cycleInfoView struct {
	AverageCycleLength  int      `json:"average_cycle_length"`
	AveragePeriodLength int      `json:"average_period_length"`
	NextPeriodPredicted *string  `json:"next_period_predicted"`
	WindowStart         *string  `json:"window_start"`
	WindowEnd           *string  `json:"window_end"`
	OvulationPredicted  *string  `json:"ovulation_predicted"`
	Confidence          *float64 `json:"confidence"`
	ConfidenceLabel     string   `json:"confidence_label"`
}

type predictionView struct {
	DaysUntilNextPeriod *int   `json:"days_until_next_period"`
	Status              string `json:"status"`
	Tier                string `json:"tier"`
}

type phaseView struct {
	Phase string `json:"phase"`
	Label string `json:"label"`
	Tone  string `json:"tone"`
}

type dashboardView struct {
	Date       string         `json:"date"`
	Phase      phaseView      `json:"phase"`
	Cycle      cycleInfoView  `json:"cycle"`
	Prediction predictionView `json:"prediction"`
}
