package services

import (
	"testing"

	"github.com/selene-health/selene/internal/models"
)

func TestDaysUntilNextPeriod(t *testing.T) {
	t.Parallel()

	today := mustParseDay(t, "2025-05-10")

	if got := DaysUntilNextPeriod(nil, today); got != nil {
		t.Fatalf("expected nil without cycle info, got %d", *got)
	}
	if got := DaysUntilNextPeriod(&models.CycleInfo{}, today); got != nil {
		t.Fatalf("expected nil without a prediction, got %d", *got)
	}

	predicted := mustParseDay(t, "2025-05-12")
	info := &models.CycleInfo{NextPeriodPredicted: &predicted}
	got := DaysUntilNextPeriod(info, today)
	if got == nil || *got != 2 {
		t.Fatalf("expected 2 days until, got %v", got)
	}

	overdue := mustParseDay(t, "2025-05-09")
	info = &models.CycleInfo{NextPeriodPredicted: &overdue}
	got = DaysUntilNextPeriod(info, today)
	if got == nil || *got != -1 {
		t.Fatalf("expected -1 days until, got %v", got)
	}
}

func TestClassifyPredictionStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		daysUntil  int
		wantStatus string
		wantTier   string
	}{
		{name: "overdue", daysUntil: -1, wantStatus: PredictionOverdue, wantTier: TierAttention},
		{name: "today", daysUntil: 0, wantStatus: PredictionToday, wantTier: TierAttention},
		{name: "soon lower", daysUntil: 1, wantStatus: PredictionSoon, wantTier: TierAttention},
		{name: "soon upper", daysUntil: 3, wantStatus: PredictionSoon, wantTier: TierAttention},
		{name: "upcoming", daysUntil: 4, wantStatus: PredictionUpcoming, wantTier: TierNormal},
		{name: "far out", daysUntil: 20, wantStatus: PredictionUpcoming, wantTier: TierNormal},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			status, tier := ClassifyPredictionStatus(testCase.daysUntil)
			if status != testCase.wantStatus {
				t.Fatalf("expected status %s, got %s", testCase.wantStatus, status)
			}
			if tier != testCase.wantTier {
				t.Fatalf("expected tier %s, got %s", testCase.wantTier, tier)
			}
		})
	}
}

func TestConfidenceLabel(t *testing.T) {
	t.Parallel()

	if got := ConfidenceLabel(nil); got != "" {
		t.Fatalf("expected empty label for absent score, got %q", got)
	}

	cases := []struct {
		score float64
		want  string
	}{
		{score: 0.9, want: ConfidenceHigh},
		{score: 0.75, want: ConfidenceHigh},
		{score: 0.74, want: ConfidenceMedium},
		{score: 0.5, want: ConfidenceMedium},
		{score: 0.49, want: ConfidenceLow},
		{score: 0.0, want: ConfidenceLow},
	}
	for _, testCase := range cases {
		score := testCase.score
		if got := ConfidenceLabel(&score); got != testCase.want {
			t.Fatalf("score %.2f: expected %s, got %s", testCase.score, testCase.want, got)
		}
	}
}
