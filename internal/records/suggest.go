package records

import (
	"sort"
	"strings"

	"babylog/internal/constants"
	"babylog/internal/models"
)

// Suggestion lists offered when logging a new record: the default set merged
// with every value already used in the collection, deduplicated and sorted.

// SuggestChangers returns the changer names to offer for a new diaper record.
func SuggestChangers(current []models.DiaperRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, name := range constants.DefaultChangers {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, r := range current {
		name := strings.TrimSpace(r.Changer)
		if name != "" && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// SuggestSleepLocations returns the locations to offer for a new sleep record.
func SuggestSleepLocations(current []models.SleepRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, loc := range constants.DefaultSleepLocations {
		if !seen[loc] {
			seen[loc] = true
			out = append(out, loc)
		}
	}
	for _, r := range current {
		loc := strings.TrimSpace(r.SleepLocation)
		if loc != "" && !seen[loc] {
			seen[loc] = true
			out = append(out, loc)
		}
	}
	sort.Strings(out)
	return out
}

// SuggestSettlingTechniques returns the settling technique tags to offer.
func SuggestSettlingTechniques(current []models.SleepRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range constants.DefaultSettlingTechniques {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for _, r := range current {
		for _, t := range r.SettlingTechniques {
			t = strings.TrimSpace(t)
			if t != "" && !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out
}
