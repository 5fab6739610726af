package storage

import "babylog/internal/models"

// Provider is the wholesale table contract every backend implements: a
// category's table is always read in full and overwritten in full. Replace
// methods are destructive — callers must pass the complete desired end state,
// never a delta. There is no upsert.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Diapers
	FetchDiapers() ([]models.DiaperRecord, error)
	ReplaceDiapers([]models.DiaperRecord) error

	// Sleeps
	FetchSleeps() ([]models.SleepRecord, error)
	ReplaceSleeps([]models.SleepRecord) error

	// Feeds
	FetchFeeds() ([]models.FeedRecord, error)
	ReplaceFeeds([]models.FeedRecord) error

	// Utils
	GetConfigPath() string
}
