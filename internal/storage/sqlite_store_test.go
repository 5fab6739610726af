package storage

import (
	"path/filepath"
	"testing"
	"time"

	"babylog/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "babylog.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_EmptyTables(t *testing.T) {
	s := newTestSQLiteStore(t)

	recs, err := s.FetchDiapers()
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty table, got %d records", len(recs))
	}
}

func TestSQLiteStore_DiaperRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	colour := "#A52A2A"
	want := []models.DiaperRecord{
		{Date: "2024-01-01", Time: "08:00", Changer: "Mum", ContainsWee: true, Notes: "first of the day"},
		{Date: "2024-01-01", Time: "12:30", Changer: "Dad", ContainsPoo: true, PooColour: &colour},
	}

	if err := s.ReplaceDiapers(want); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	got, err := s.FetchDiapers()
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}

	byKey := map[string]models.DiaperRecord{}
	for _, r := range got {
		byKey[r.Key()] = r
	}
	first := byKey["2024-01-01 08:00"]
	if first.Changer != "Mum" || !first.ContainsWee || first.PooColour != nil || first.Notes != "first of the day" {
		t.Errorf("round trip mismatch: %+v", first)
	}
	second := byKey["2024-01-01 12:30"]
	if second.PooColour == nil || *second.PooColour != colour {
		t.Errorf("expected poo colour to survive, got %+v", second)
	}
}

func TestSQLiteStore_ReplaceOverwritesWholeTable(t *testing.T) {
	s := newTestSQLiteStore(t)

	if err := s.ReplaceDiapers([]models.DiaperRecord{
		{Date: "2024-01-01", Time: "08:00", Changer: "Mum"},
		{Date: "2024-01-02", Time: "09:00", Changer: "Dad"},
	}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	if err := s.ReplaceDiapers([]models.DiaperRecord{
		{Date: "2024-01-03", Time: "10:00", Changer: "Mum"},
	}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	got, err := s.FetchDiapers()
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(got) != 1 || got[0].Key() != "2024-01-03 10:00" {
		t.Errorf("expected only the new collection to survive, got %+v", got)
	}
}

func TestSQLiteStore_SleepRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	end := time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC)
	open := models.SleepRecord{
		SleepID:        0,
		SleepStartTime: time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC),
		TimeToSettle:   10,
		SleepLocation:  "Car Seat",
	}
	closed := models.SleepRecord{
		SleepID:              1,
		SleepStartTime:       time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC),
		SleepEndTime:         &end,
		SleepLocation:        "Moses Basket",
		SettlingTechniques:   []string{"Bouncing"},
		TemporaryWakeUpTimes: []time.Time{time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC)},
	}

	if err := s.ReplaceSleeps([]models.SleepRecord{open, closed}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	got, err := s.FetchSleeps()
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}

	byID := map[int64]models.SleepRecord{}
	for _, r := range got {
		byID[r.SleepID] = r
	}
	if !byID[0].Open() {
		t.Error("open sleep must come back with a nil end time")
	}
	gotClosed := byID[1]
	if gotClosed.Open() || !gotClosed.SleepEndTime.Equal(end) {
		t.Errorf("closed sleep round trip mismatch: %+v", gotClosed)
	}
	if len(gotClosed.TemporaryWakeUpTimes) != 1 ||
		!gotClosed.TemporaryWakeUpTimes[0].Equal(closed.TemporaryWakeUpTimes[0]) {
		t.Errorf("wake up times mismatch: %v", gotClosed.TemporaryWakeUpTimes)
	}
	if len(gotClosed.SettlingTechniques) != 1 || gotClosed.SettlingTechniques[0] != "Bouncing" {
		t.Errorf("settling techniques mismatch: %v", gotClosed.SettlingTechniques)
	}
}

func TestSQLiteStore_FeedRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	duration := 25.0
	sideTime := 10.0
	quantity := 120.0
	want := []models.FeedRecord{
		{
			FeedDate:      time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			StartSide:     models.SideLeft,
			Duration:      &duration,
			StartSideTime: &sideTime,
		},
		{
			FeedDate:       time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			BottleFed:      true,
			BottleQuantity: &quantity,
		},
	}

	if err := s.ReplaceFeeds(want); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	got, err := s.FetchFeeds()
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}

	byKey := map[string]models.FeedRecord{}
	for _, r := range got {
		byKey[r.Key()] = r
	}
	breast := byKey["2024-01-01 09:00"]
	if breast.Duration == nil || *breast.Duration != duration ||
		breast.StartSide != models.SideLeft ||
		breast.StartSideTime == nil || *breast.StartSideTime != sideTime ||
		breast.BottleQuantity != nil {
		t.Errorf("breastfeed round trip mismatch: %+v", breast)
	}
	bottle := byKey["2024-01-01 12:00"]
	if !bottle.BottleFed || bottle.BottleQuantity == nil || *bottle.BottleQuantity != quantity {
		t.Errorf("bottle feed round trip mismatch: %+v", bottle)
	}
}

func TestSQLiteStore_LoadMissingFileFails(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := s.Load(); err == nil {
		t.Error("expected load of a missing database to fail")
	}
}
