package cli

import (
	"fmt"
	"time"

	"babylog/internal/constants"
	"babylog/internal/storage"
)

// Context is shared by every command. All reads and writes go through the
// session cache so a command never refetches a table it already has at the
// current generation.
type Context struct {
	Store *storage.Session
}

// ParseDateTime combines separate date and time inputs into one timestamp.
// An empty date means today.
func ParseDateTime(date, tod string) (time.Time, error) {
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	}
	t, err := time.ParseInLocation(constants.DateTimeFormat, date+" "+tod, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q, expected YYYY-MM-DD and HH:MM", date, tod)
	}
	return t, nil
}

// parseKey parses a combined "YYYY-MM-DD HH:MM" display key.
func parseKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateTimeFormat, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid key %q, expected \"YYYY-MM-DD HH:MM\"", key)
	}
	return t, nil
}

func today() string {
	return time.Now().Format(constants.DateFormat)
}

// PrintWarnings reports non-fatal validation findings without blocking the
// write that produced them.
func PrintWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Printf("Warning: %s\n", w)
	}
}
