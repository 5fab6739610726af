package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"babylog/internal/errors"
	"babylog/internal/models"
)

// snapshot is the on-disk shape of the JSON store: one full current-state
// snapshot per category, rewritten wholesale on every save.
type snapshot struct {
	Version  int                   `json:"version"`
	Nappies  []models.DiaperRecord `json:"nappies"`
	Sleeping []models.SleepRecord  `json:"sleeping"`
	Drinking []models.FeedRecord   `json:"drinking"`
}

// JSONStore persists all three tables as a single JSON file. It is the
// simplest Provider and the format the snapshot exporter writes.
type JSONStore struct {
	path string
	snap *snapshot
}

// NewJSONStore creates a JSON store at the given path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.snap = &snapshot{Version: 1}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'babylog init' first")
		}
		return errors.Storef("failed to read storage: %v", err)
	}

	s.snap = &snapshot{}
	if err := json.Unmarshal(data, s.snap); err != nil {
		return errors.Storef("failed to parse storage: %v", err)
	}

	return nil
}

func (s *JSONStore) Close() error { return nil }

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.snap, "", "  ")
	if err != nil {
		return errors.Storef("failed to serialize storage: %v", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return errors.Storef("failed to write storage: %v", err)
	}

	return nil
}

func (s *JSONStore) FetchDiapers() ([]models.DiaperRecord, error) {
	if s.snap == nil {
		return nil, errors.Storef("storage not loaded")
	}
	return append([]models.DiaperRecord(nil), s.snap.Nappies...), nil
}

func (s *JSONStore) ReplaceDiapers(recs []models.DiaperRecord) error {
	if s.snap == nil {
		return errors.Storef("storage not loaded")
	}
	s.snap.Nappies = append([]models.DiaperRecord(nil), recs...)
	return s.save()
}

func (s *JSONStore) FetchSleeps() ([]models.SleepRecord, error) {
	if s.snap == nil {
		return nil, errors.Storef("storage not loaded")
	}
	return append([]models.SleepRecord(nil), s.snap.Sleeping...), nil
}

func (s *JSONStore) ReplaceSleeps(recs []models.SleepRecord) error {
	if s.snap == nil {
		return errors.Storef("storage not loaded")
	}
	s.snap.Sleeping = append([]models.SleepRecord(nil), recs...)
	return s.save()
}

func (s *JSONStore) FetchFeeds() ([]models.FeedRecord, error) {
	if s.snap == nil {
		return nil, errors.Storef("storage not loaded")
	}
	return append([]models.FeedRecord(nil), s.snap.Drinking...), nil
}

func (s *JSONStore) ReplaceFeeds(recs []models.FeedRecord) error {
	if s.snap == nil {
		return errors.Storef("storage not loaded")
	}
	s.snap.Drinking = append([]models.FeedRecord(nil), recs...)
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
