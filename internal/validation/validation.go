package validation

import (
	"fmt"
	"strings"
	"time"

	"babylog/internal/constants"
	"babylog/internal/errors"
	"babylog/internal/models"
)

// Result collects non-fatal findings about a record. Warnings are reported to
// the caregiver but never block persistence.
type Result struct {
	Warnings []string
}

// HasWarnings reports whether any warnings were collected.
func (r Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// ValidateDiaper checks a diaper record before it enters a collection.
//
// A poo colour on a record without poo is coerced to nil rather than
// rejected: the colour input is simply ignored when there is nothing to
// colour. An empty changer name is a hard failure.
func ValidateDiaper(rec *models.DiaperRecord) error {
	if strings.TrimSpace(rec.Changer) == "" {
		return errors.Validationf("changer name cannot be empty")
	}
	if _, err := time.Parse(constants.DateFormat, rec.Date); err != nil {
		return errors.Validationf("invalid date %q, expected YYYY-MM-DD", rec.Date)
	}
	if _, err := time.Parse(constants.TimeFormat, rec.Time); err != nil {
		return errors.Validationf("invalid time %q, expected HH:MM", rec.Time)
	}
	if !rec.ContainsPoo {
		rec.PooColour = nil
	}
	return nil
}

// ValidateFeed checks a feed record. Inconsistent durations (total time less
// than the time on the start side) are a reportable condition, not a fatal
// one, so they land in the Result as warnings.
func ValidateFeed(rec models.FeedRecord) (Result, error) {
	var res Result

	if rec.FeedDate.IsZero() {
		return res, errors.Validationf("feed date is required")
	}
	if rec.Duration != nil && *rec.Duration < 0 {
		return res, errors.Validationf("duration cannot be negative")
	}
	if rec.StartSideTime != nil && *rec.StartSideTime < 0 {
		return res, errors.Validationf("time on start side cannot be negative")
	}
	if rec.BottleQuantity != nil && *rec.BottleQuantity < 0 {
		return res, errors.Validationf("bottle quantity cannot be negative")
	}

	if rec.Duration != nil && rec.StartSideTime != nil && *rec.Duration < *rec.StartSideTime {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"total time (%.0fm) is less than the time on the start side (%.0fm)",
			*rec.Duration, *rec.StartSideTime))
	}

	return res, nil
}

// ValidateSleep checks a new sleep record before it enters a collection.
func ValidateSleep(rec models.SleepRecord) error {
	if rec.SleepStartTime.IsZero() {
		return errors.Validationf("sleep start time is required")
	}
	if rec.TimeToSettle < 0 {
		return errors.Validationf("time to settle cannot be negative")
	}
	return nil
}

// NextSleepID returns the id for a new sleep record: 0 for an empty
// collection, otherwise max(existing)+1. Ids are never reused after deletion,
// so this must be recomputed at mutation time from the current collection.
func NextSleepID(existing []models.SleepRecord) int64 {
	if len(existing) == 0 {
		return 0
	}
	var max int64
	for _, r := range existing {
		if r.SleepID > max {
			max = r.SleepID
		}
	}
	return max + 1
}
