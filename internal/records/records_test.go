package records

import (
	stderrors "errors"
	"testing"
	"time"

	"babylog/internal/errors"
	"babylog/internal/models"
)

func ts(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAddDiaper_Appends(t *testing.T) {
	current := []models.DiaperRecord{
		{Date: "2024-01-01", Time: "08:00", Changer: "Mum"},
	}

	next, err := AddDiaper(current, models.DiaperRecord{
		Date: "2024-01-01", Time: "12:30", Changer: "Dad", ContainsWee: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next) != 2 {
		t.Fatalf("expected 2 records, got %d", len(next))
	}
	if len(current) != 1 {
		t.Error("input collection was mutated")
	}
}

func TestAddDiaper_RejectsInvalid(t *testing.T) {
	_, err := AddDiaper(nil, models.DiaperRecord{Date: "2024-01-01", Time: "08:00"})
	if !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestDeleteDiaper_RemovesByKey(t *testing.T) {
	current := []models.DiaperRecord{
		{Date: "2024-01-01", Time: "08:00", Changer: "Mum"},
		{Date: "2024-01-01", Time: "12:30", Changer: "Dad"},
	}

	next, err := DeleteDiaper(current, "2024-01-01 08:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next) != 1 {
		t.Fatalf("expected 1 record, got %d", len(next))
	}
	if next[0].Key() != "2024-01-01 12:30" {
		t.Errorf("wrong record removed, remaining %s", next[0].Key())
	}
}

func TestDeleteDiaper_SetEquality(t *testing.T) {
	// Duplicate keys are permitted on insert, so a delete takes them all.
	current := []models.DiaperRecord{
		{Date: "2024-01-01", Time: "08:00", Changer: "Mum"},
		{Date: "2024-01-01", Time: "08:00", Changer: "Dad"},
		{Date: "2024-01-02", Time: "09:00", Changer: "Mum"},
	}

	next, err := DeleteDiaper(current, "2024-01-01 08:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next) != 1 {
		t.Fatalf("expected both duplicates removed, got %d records", len(next))
	}
}

func TestDeleteDiaper_NotFound(t *testing.T) {
	_, err := DeleteDiaper(nil, "2024-01-01 08:00")
	if !stderrors.Is(err, errors.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestAddSleep_AssignsNextID(t *testing.T) {
	current := []models.SleepRecord{{SleepID: 0}, {SleepID: 3}}

	next, err := AddSleep(current, models.SleepRecord{SleepStartTime: ts("2024-01-01T20:00")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	added := next[len(next)-1]
	if added.SleepID != 4 {
		t.Errorf("expected sleep id 4, got %d", added.SleepID)
	}
	if !added.Open() {
		t.Error("new sleep should start open")
	}
}

func TestAddSleep_EmptyCollectionStartsAtZero(t *testing.T) {
	next, err := AddSleep(nil, models.SleepRecord{SleepStartTime: ts("2024-01-01T20:00")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next[0].SleepID != 0 {
		t.Errorf("expected sleep id 0, got %d", next[0].SleepID)
	}
}

func TestCloseSleep_TransitionsToClosed(t *testing.T) {
	start := ts("2024-01-01T20:00")
	end := ts("2024-01-02T06:00")
	current := []models.SleepRecord{{
		SleepID:            2,
		SleepStartTime:     start,
		TimeToSettle:       15,
		SleepLocation:      "Moses Basket",
		SettlingTechniques: []string{"Singing"},
	}}

	next, err := CloseSleep(current, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	closed := next[0]
	if closed.SleepEndTime == nil || !closed.SleepEndTime.Equal(end) {
		t.Fatal("expected sleep to be closed with the given end time")
	}
	if closed.SleepID != 2 || closed.TimeToSettle != 15 ||
		closed.SleepLocation != "Moses Basket" || len(closed.SettlingTechniques) != 1 {
		t.Error("closing a sleep must preserve all other fields")
	}
	if current[0].SleepEndTime != nil {
		t.Error("input collection was mutated")
	}
}

func TestCloseSleep_IgnoresClosedRecords(t *testing.T) {
	start := ts("2024-01-01T20:00")
	end := ts("2024-01-02T06:00")
	current := []models.SleepRecord{{SleepID: 0, SleepStartTime: start, SleepEndTime: &end}}

	_, err := CloseSleep(current, start, ts("2024-01-02T07:00"))
	if !stderrors.Is(err, errors.ErrNotFound) {
		t.Errorf("a closed sleep must not be closable again, got %v", err)
	}
}

func TestCloseSleep_AmbiguousStartTime(t *testing.T) {
	start := ts("2024-01-01T20:00")
	current := []models.SleepRecord{
		{SleepID: 0, SleepStartTime: start},
		{SleepID: 1, SleepStartTime: start},
	}

	_, err := CloseSleep(current, start, ts("2024-01-02T06:00"))
	if !stderrors.Is(err, errors.ErrAmbiguous) {
		t.Errorf("expected ambiguity error, got %v", err)
	}
}

func TestAppendTemporaryWakeup(t *testing.T) {
	start := ts("2024-01-01T20:00")
	wake := ts("2024-01-01T23:00")
	current := []models.SleepRecord{{SleepID: 0, SleepStartTime: start}}

	next, err := AppendTemporaryWakeup(current, start, wake)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := next[0]
	if got.SleepEndTime != nil {
		t.Error("a temporary wake up must leave the sleep open")
	}
	if len(got.TemporaryWakeUpTimes) != 1 || !got.TemporaryWakeUpTimes[0].Equal(wake) {
		t.Errorf("expected exactly the wake up time appended, got %v", got.TemporaryWakeUpTimes)
	}
	if len(current[0].TemporaryWakeUpTimes) != 0 {
		t.Error("input collection was mutated")
	}
}

func TestAppendTemporaryWakeup_Accumulates(t *testing.T) {
	start := ts("2024-01-01T20:00")
	current := []models.SleepRecord{{SleepID: 0, SleepStartTime: start}}

	next, err := AppendTemporaryWakeup(current, start, ts("2024-01-01T22:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	next, err = AppendTemporaryWakeup(next, start, ts("2024-01-01T23:30"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(next[0].TemporaryWakeUpTimes) != 2 {
		t.Errorf("expected 2 wake ups, got %d", len(next[0].TemporaryWakeUpTimes))
	}
}

func TestDeleteSleep(t *testing.T) {
	current := []models.SleepRecord{{SleepID: 0}, {SleepID: 1}}

	next, err := DeleteSleep(current, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next) != 1 || next[0].SleepID != 1 {
		t.Error("expected only sleep 1 to remain")
	}

	if _, err := DeleteSleep(next, 7); !stderrors.Is(err, errors.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestAddFeed_WarnsButPersists(t *testing.T) {
	duration := 5.0
	sideTime := 10.0
	rec := models.FeedRecord{
		FeedDate:      ts("2024-01-01T09:00"),
		StartSide:     models.SideLeft,
		Duration:      &duration,
		StartSideTime: &sideTime,
	}

	next, res, err := AddFeed(nil, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.HasWarnings() {
		t.Error("expected a duration warning")
	}
	if len(next) != 1 {
		t.Error("a warning must not block the append")
	}
}

func TestDeleteFeed_SetEquality(t *testing.T) {
	when := ts("2024-01-01T09:00")
	current := []models.FeedRecord{
		{FeedDate: when, BottleFed: true},
		{FeedDate: when},
		{FeedDate: ts("2024-01-01T12:00")},
	}

	next, err := DeleteFeed(current, "2024-01-01 09:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next) != 1 {
		t.Fatalf("expected both colliding feeds removed, got %d records", len(next))
	}
}

func TestSuggestionsMergeDefaultsAndHistory(t *testing.T) {
	diapers := []models.DiaperRecord{{Changer: "Granny"}, {Changer: "Mum"}}
	changers := SuggestChangers(diapers)

	want := map[string]bool{"Mum": false, "Dad": false, "Granny": false}
	for _, c := range changers {
		if _, ok := want[c]; !ok {
			t.Errorf("unexpected suggestion %q", c)
		}
		want[c] = true
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("missing suggestion %q", name)
		}
	}

	sleeps := []models.SleepRecord{{SleepLocation: "Cot", SettlingTechniques: []string{"Rocking", "Singing"}}}
	locations := SuggestSleepLocations(sleeps)
	if len(locations) != 3 {
		t.Errorf("expected 3 locations, got %v", locations)
	}
	techniques := SuggestSettlingTechniques(sleeps)
	if len(techniques) != 3 {
		t.Errorf("expected 3 techniques, got %v", techniques)
	}
}
