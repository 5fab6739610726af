package models

import "time"

// SleepRecord represents one sleep session.
//
// A record with a nil SleepEndTime is open (the baby is still asleep). Closing
// a sleep sets the end time; a closed record never reopens.
type SleepRecord struct {
	SleepID              int64       `json:"sleep_id"`
	SleepStartTime       time.Time   `json:"sleep_start_time"`
	SleepEndTime         *time.Time  `json:"sleep_end_time,omitempty"`
	TimeToSettle         int         `json:"time_to_settle"` // minutes
	SleepLocation        string      `json:"sleep_location"`
	SettlingTechniques   []string    `json:"settling_techniques"`
	TemporaryWakeUpTimes []time.Time `json:"temporary_wake_up_times"`
}

// Open reports whether the sleep is still in progress.
func (r SleepRecord) Open() bool {
	return r.SleepEndTime == nil
}

// DurationMin returns the total sleep duration in minutes, or 0 while the
// sleep is still open.
func (r SleepRecord) DurationMin() float64 {
	if r.SleepEndTime == nil {
		return 0
	}
	return r.SleepEndTime.Sub(r.SleepStartTime).Minutes()
}
