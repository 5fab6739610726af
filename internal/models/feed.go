package models

import "time"

// Side is the breast a feed started on, from the feeder's point of view.
type Side string

const (
	SideNone  Side = "None"
	SideLeft  Side = "Left"
	SideRight Side = "Right"
)

// FeedRecord represents one feeding session. Bottle feeds leave the side
// fields nil; breastfeeds leave BottleQuantity nil.
//
// Like diaper records, feeds are identified positionally by their feed
// timestamp, so duplicate timestamps make delete-by-key a set deletion.
type FeedRecord struct {
	FeedDate       time.Time `json:"feed_date"`
	BottleFed      bool      `json:"bottle_fed"`
	Duration       *float64  `json:"duration,omitempty"`        // total minutes
	StartSide      Side      `json:"start_side,omitempty"`      // None when bottle fed
	StartSideTime  *float64  `json:"start_side_time,omitempty"` // minutes on start side
	BottleQuantity *float64  `json:"bottle_quantity,omitempty"` // millilitres
}

// Key returns the positional identity key for the record.
func (r FeedRecord) Key() string {
	return r.FeedDate.Format("2006-01-02 15:04")
}
