package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/selene-health/selene/internal/models"
)

func newRepositoriesForTest(t *testing.T) *Repositories {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "selene-repos.db")
	database := openSQLiteForTest(t, databasePath)
	return NewRepositories(database)
}

func mustDay(t *testing.T, raw string) time.Time {
	t.Helper()

	day, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return day
}

func TestPeriodEntryRepositoryListsNewestFirst(t *testing.T) {
	repositories := newRepositoriesForTest(t)

	profile := models.Profile{Name: "Test"}
	if err := repositories.Profiles.Create(&profile); err != nil {
		t.Fatalf("create profile: %v", err)
	}

	starts := []string{"2025-03-01", "2025-01-01", "2025-02-01"}
	for _, start := range starts {
		entry := models.PeriodEntry{
			ProfileID: profile.ID,
			StartDate: mustDay(t, start),
			Flow:      models.FlowMedium,
		}
		if err := repositories.PeriodEntries.Create(&entry); err != nil {
			t.Fatalf("create period entry %s: %v", start, err)
		}
	}

	entries, err := repositories.PeriodEntries.ListByProfileDesc(profile.ID)
	if err != nil {
		t.Fatalf("list period entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	expectedOrder := []string{"2025-03-01", "2025-02-01", "2025-01-01"}
	for index, expected := range expectedOrder {
		if got := entries[index].StartDate.Format("2006-01-02"); got != expected {
			t.Fatalf("entry %d: expected start %s, got %s", index, expected, got)
		}
	}
}

func TestPeriodEntryRepositoryScopesFindToProfile(t *testing.T) {
	repositories := newRepositoriesForTest(t)

	owner := models.Profile{Name: "Owner"}
	other := models.Profile{Name: "Other"}
	for _, profile := range []*models.Profile{&owner, &other} {
		if err := repositories.Profiles.Create(profile); err != nil {
			t.Fatalf("create profile: %v", err)
		}
	}

	entry := models.PeriodEntry{
		ProfileID: owner.ID,
		StartDate: mustDay(t, "2025-05-01"),
		Flow:      models.FlowHeavy,
	}
	if err := repositories.PeriodEntries.Create(&entry); err != nil {
		t.Fatalf("create period entry: %v", err)
	}

	if _, err := repositories.PeriodEntries.FindByIDForProfile(entry.ID, owner.ID); err != nil {
		t.Fatalf("expected owner lookup to succeed: %v", err)
	}
	if _, err := repositories.PeriodEntries.FindByIDForProfile(entry.ID, other.ID); err == nil {
		t.Fatal("expected cross-profile lookup to fail")
	}
}

func TestCycleInfoRepositoryUpsertKeepsSingleRow(t *testing.T) {
	repositories := newRepositoriesForTest(t)

	profile := models.Profile{Name: "Test"}
	if err := repositories.Profiles.Create(&profile); err != nil {
		t.Fatalf("create profile: %v", err)
	}

	first := models.CycleInfo{
		ProfileID:           profile.ID,
		AverageCycleLength:  28,
		AveragePeriodLength: 5,
	}
	if err := repositories.CycleInfos.Upsert(&first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	predicted := mustDay(t, "2025-06-15")
	second := models.CycleInfo{
		ProfileID:           profile.ID,
		AverageCycleLength:  30,
		AveragePeriodLength: 4,
		NextPeriodPredicted: &predicted,
	}
	if err := repositories.CycleInfos.Upsert(&second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	stored, found, err := repositories.CycleInfos.FindByProfile(profile.ID)
	if err != nil {
		t.Fatalf("find cycle info: %v", err)
	}
	if !found {
		t.Fatal("expected cycle info row to exist")
	}
	if stored.AverageCycleLength != 30 {
		t.Fatalf("expected updated average cycle length 30, got %d", stored.AverageCycleLength)
	}
	if stored.NextPeriodPredicted == nil || stored.NextPeriodPredicted.Format("2006-01-02") != "2025-06-15" {
		t.Fatalf("expected updated prediction date, got %v", stored.NextPeriodPredicted)
	}
}

func TestDailyEntryRepositoryFindByDayRange(t *testing.T) {
	repositories := newRepositoriesForTest(t)

	profile := models.Profile{Name: "Test"}
	if err := repositories.Profiles.Create(&profile); err != nil {
		t.Fatalf("create profile: %v", err)
	}

	day := mustDay(t, "2025-04-10")
	entry := models.DailyEntry{
		ProfileID: profile.ID,
		Date:      day,
		Flow:      models.FlowLight,
	}
	if err := repositories.DailyEntries.Create(&entry); err != nil {
		t.Fatalf("create daily entry: %v", err)
	}

	found, exists, err := repositories.DailyEntries.FindByProfileAndDayRange(profile.ID, day, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("find daily entry: %v", err)
	}
	if !exists {
		t.Fatal("expected daily entry to be found in its day range")
	}
	if found.Flow != models.FlowLight {
		t.Fatalf("expected flow light, got %q", found.Flow)
	}

	_, exists, err = repositories.DailyEntries.FindByProfileAndDayRange(profile.ID, day.AddDate(0, 0, 1), day.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("find daily entry outside range: %v", err)
	}
	if exists {
		t.Fatal("expected no entry outside its day range")
	}
}

func TestSymptomRecordRepositoryDeleteReportsMissingRows(t *testing.T) {
	repositories := newRepositoriesForTest(t)

	profile := models.Profile{Name: "Test"}
	if err := repositories.Profiles.Create(&profile); err != nil {
		t.Fatalf("create profile: %v", err)
	}

	record := models.SymptomRecord{
		ProfileID:  profile.ID,
		Type:       "cramps",
		RecordedAt: mustDay(t, "2025-04-10"),
	}
	if err := repositories.SymptomRecords.Create(&record); err != nil {
		t.Fatalf("create symptom record: %v", err)
	}

	deleted, err := repositories.SymptomRecords.DeleteByIDForProfile(record.ID, profile.ID)
	if err != nil {
		t.Fatalf("delete symptom record: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to report an affected row")
	}

	deleted, err = repositories.SymptomRecords.DeleteByIDForProfile(record.ID, profile.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if deleted {
		t.Fatal("expected second delete to report no affected rows")
	}
}

func TestProfileRepositoryEnsureDefaultIsIdempotent(t *testing.T) {
	repositories := newRepositoriesForTest(t)

	first, err := repositories.Profiles.EnsureDefault("Default")
	if err != nil {
		t.Fatalf("first ensure default: %v", err)
	}
	second, err := repositories.Profiles.EnsureDefault("Default")
	if err != nil {
		t.Fatalf("second ensure default: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected same default profile, got ids %d and %d", first.ID, second.ID)
	}

	profiles, err := repositories.Profiles.List()
	if err != nil {
		t.Fatalf("list profiles: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("expected exactly one profile, got %d", len(profiles))
	}
}
