package validation

import (
	stderrors "errors"
	"testing"
	"time"

	"babylog/internal/errors"
	"babylog/internal/models"
)

func TestValidateDiaper_CoercesColourWithoutPoo(t *testing.T) {
	colour := "#A52A2A"
	rec := models.DiaperRecord{
		Date:        "2024-01-01",
		Time:        "08:00",
		Changer:     "Mum",
		ContainsPoo: false,
		PooColour:   &colour,
	}

	if err := ValidateDiaper(&rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.PooColour != nil {
		t.Errorf("expected poo colour to be coerced to nil, got %q", *rec.PooColour)
	}
}

func TestValidateDiaper_KeepsColourWithPoo(t *testing.T) {
	colour := "#A52A2A"
	rec := models.DiaperRecord{
		Date:        "2024-01-01",
		Time:        "08:00",
		Changer:     "Dad",
		ContainsPoo: true,
		PooColour:   &colour,
	}

	if err := ValidateDiaper(&rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.PooColour == nil || *rec.PooColour != colour {
		t.Error("expected poo colour to be preserved")
	}
}

func TestValidateDiaper_EmptyChanger(t *testing.T) {
	rec := models.DiaperRecord{Date: "2024-01-01", Time: "08:00", Changer: "  "}

	err := ValidateDiaper(&rec)
	if !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestValidateDiaper_BadFormats(t *testing.T) {
	cases := []struct {
		name string
		date string
		tod  string
	}{
		{"bad date", "01/01/2024", "08:00"},
		{"bad time", "2024-01-01", "8am"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := models.DiaperRecord{Date: tc.date, Time: tc.tod, Changer: "Mum"}
			if err := ValidateDiaper(&rec); !stderrors.Is(err, errors.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestValidateFeed_DurationWarning(t *testing.T) {
	duration := 10.0
	sideTime := 15.0
	rec := models.FeedRecord{
		FeedDate:      time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		StartSide:     models.SideLeft,
		Duration:      &duration,
		StartSideTime: &sideTime,
	}

	res, err := ValidateFeed(rec)
	if err != nil {
		t.Fatalf("a short total time should warn, not fail: %v", err)
	}
	if !res.HasWarnings() {
		t.Error("expected a warning when total time < time on start side")
	}
}

func TestValidateFeed_ConsistentDurations(t *testing.T) {
	duration := 20.0
	sideTime := 15.0
	rec := models.FeedRecord{
		FeedDate:      time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		StartSide:     models.SideRight,
		Duration:      &duration,
		StartSideTime: &sideTime,
	}

	res, err := ValidateFeed(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.HasWarnings() {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}
}

func TestValidateFeed_MissingDate(t *testing.T) {
	_, err := ValidateFeed(models.FeedRecord{})
	if !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestNextSleepID(t *testing.T) {
	cases := []struct {
		name     string
		existing []models.SleepRecord
		want     int64
	}{
		{"empty collection", nil, 0},
		{"single zero id", []models.SleepRecord{{SleepID: 0}}, 1},
		{"gaps are not reused", []models.SleepRecord{{SleepID: 0}, {SleepID: 3}}, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextSleepID(tc.existing); got != tc.want {
				t.Errorf("NextSleepID = %d, want %d", got, tc.want)
			}
		})
	}
}
