package constants

const (
	AppName            = "babylog"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/babylog/babylog.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time-of-day format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DateTimeFormat is the combined timestamp format used for sleep and feed times
	DateTimeFormat = "2006-01-02 15:04"

	// Snapshot export constants
	MaxSnapshots       = 14
	SnapshotDirName    = "snapshots"
	SnapshotFilePrefix = "babylog-"
	SnapshotFileSuffix = ".json"
)

// Default suggestion lists shown when logging a record. History is merged in
// on top of these, never replacing them.
var (
	DefaultChangers           = []string{"Mum", "Dad"}
	DefaultSleepLocations     = []string{"Moses Basket", "Car Seat"}
	DefaultSettlingTechniques = []string{"Singing", "Bouncing"}
)
