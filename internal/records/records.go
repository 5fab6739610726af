// Package records implements the mutation engine shared by all three
// categories. Every operation is pure: it takes the full current collection
// and returns the full next collection, leaving the input untouched.
// Persisting the result is the caller's job, always as a wholesale replace.
package records

import (
	"fmt"
	"time"

	"babylog/internal/errors"
	"babylog/internal/models"
	"babylog/internal/validation"
)

// AddDiaper validates the record and appends it. No duplicate-key check is
// performed: two changes logged for the same minute both survive and will
// both match a future delete by that key.
func AddDiaper(current []models.DiaperRecord, rec models.DiaperRecord) ([]models.DiaperRecord, error) {
	if err := validation.ValidateDiaper(&rec); err != nil {
		return nil, err
	}
	next := make([]models.DiaperRecord, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, rec)
	return next, nil
}

// DeleteDiaper removes every record whose key equals key. This is a
// set-equality deletion: duplicate keys all go. ErrNotFound when nothing
// matches.
func DeleteDiaper(current []models.DiaperRecord, key string) ([]models.DiaperRecord, error) {
	next := make([]models.DiaperRecord, 0, len(current))
	for _, r := range current {
		if r.Key() != key {
			next = append(next, r)
		}
	}
	if len(next) == len(current) {
		return nil, fmt.Errorf("%w: no diaper change at %s", errors.ErrNotFound, key)
	}
	return next, nil
}

// AddFeed validates the record and appends it, returning any validation
// warnings alongside the new collection.
func AddFeed(current []models.FeedRecord, rec models.FeedRecord) ([]models.FeedRecord, validation.Result, error) {
	res, err := validation.ValidateFeed(rec)
	if err != nil {
		return nil, res, err
	}
	next := make([]models.FeedRecord, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, rec)
	return next, res, nil
}

// DeleteFeed removes every record whose key equals key, mirroring
// DeleteDiaper's set-equality semantics.
func DeleteFeed(current []models.FeedRecord, key string) ([]models.FeedRecord, error) {
	next := make([]models.FeedRecord, 0, len(current))
	for _, r := range current {
		if r.Key() != key {
			next = append(next, r)
		}
	}
	if len(next) == len(current) {
		return nil, fmt.Errorf("%w: no feed at %s", errors.ErrNotFound, key)
	}
	return next, nil
}

// AddSleep validates the record, assigns its id from the current collection
// and appends it open (no end time). The id must be computed here, at
// mutation time, never cached.
func AddSleep(current []models.SleepRecord, rec models.SleepRecord) ([]models.SleepRecord, error) {
	if err := validation.ValidateSleep(rec); err != nil {
		return nil, err
	}
	rec.SleepID = validation.NextSleepID(current)
	rec.SleepEndTime = nil
	next := make([]models.SleepRecord, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, rec)
	return next, nil
}

// findOpenSleep locates the single open record with the given start time.
// More than one open match is an error rather than a silent first-match: the
// caller cannot tell which sleep the caregiver meant.
func findOpenSleep(current []models.SleepRecord, start time.Time) (int, error) {
	found := -1
	for i, r := range current {
		if !r.Open() || !r.SleepStartTime.Equal(start) {
			continue
		}
		if found >= 0 {
			return -1, fmt.Errorf("%w: more than one open sleep starts at %s",
				errors.ErrAmbiguous, start.Format("2006-01-02 15:04"))
		}
		found = i
	}
	if found < 0 {
		return -1, fmt.Errorf("%w: no open sleep starts at %s",
			errors.ErrNotFound, start.Format("2006-01-02 15:04"))
	}
	return found, nil
}

// CloseSleep transitions the open record with the given start time to closed,
// setting its end time. All other fields are preserved. A closed record never
// reopens.
func CloseSleep(current []models.SleepRecord, start, end time.Time) ([]models.SleepRecord, error) {
	i, err := findOpenSleep(current, start)
	if err != nil {
		return nil, err
	}
	next := cloneSleeps(current)
	next[i].SleepEndTime = &end
	return next, nil
}

// AppendTemporaryWakeup records a wake-up that did not end the sleep: the
// record stays open and the time is appended to its wake-up list.
func AppendTemporaryWakeup(current []models.SleepRecord, start, wakeUp time.Time) ([]models.SleepRecord, error) {
	i, err := findOpenSleep(current, start)
	if err != nil {
		return nil, err
	}
	next := cloneSleeps(current)
	wakes := make([]time.Time, 0, len(next[i].TemporaryWakeUpTimes)+1)
	wakes = append(wakes, next[i].TemporaryWakeUpTimes...)
	wakes = append(wakes, wakeUp)
	next[i].TemporaryWakeUpTimes = wakes
	return next, nil
}

// DeleteSleep removes the record with the given id. Sleep ids are unique, so
// at most one record goes.
func DeleteSleep(current []models.SleepRecord, id int64) ([]models.SleepRecord, error) {
	next := make([]models.SleepRecord, 0, len(current))
	for _, r := range current {
		if r.SleepID != id {
			next = append(next, r)
		}
	}
	if len(next) == len(current) {
		return nil, fmt.Errorf("%w: no sleep with id %d", errors.ErrNotFound, id)
	}
	return next, nil
}

func cloneSleeps(src []models.SleepRecord) []models.SleepRecord {
	dst := make([]models.SleepRecord, len(src))
	copy(dst, src)
	return dst
}
