package models

// DiaperRecord represents a single diaper change.
//
// Records carry no surrogate id: a record is identified positionally by its
// (date, time) display key. Duplicate keys are permitted, so delete-by-key is
// a set deletion, not a single-row deletion.
type DiaperRecord struct {
	Date        string  `json:"date"` // YYYY-MM-DD format
	Time        string  `json:"time"` // HH:MM format
	Changer     string  `json:"changer"`
	ContainsWee bool    `json:"contains_wee"`
	ContainsPoo bool    `json:"contains_poo"`
	PooColour   *string `json:"poo_colour,omitempty"` // nil unless ContainsPoo
	Notes       string  `json:"notes"`
}

// Key returns the positional identity key for the record.
func (r DiaperRecord) Key() string {
	return r.Date + " " + r.Time
}
