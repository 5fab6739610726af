// Package backup exports full snapshots of every category table. The
// full-table write model makes a snapshot trivially consistent: it is exactly
// what a replace would write.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"babylog/internal/constants"
	"babylog/internal/models"
	"babylog/internal/storage"
)

// Snapshot is the on-disk export format.
type Snapshot struct {
	ID        string                `json:"id"`
	CreatedAt time.Time             `json:"created_at"`
	Nappies   []models.DiaperRecord `json:"nappies"`
	Sleeping  []models.SleepRecord  `json:"sleeping"`
	Drinking  []models.FeedRecord   `json:"drinking"`
}

// SnapshotInfo describes one snapshot file on disk.
type SnapshotInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles snapshot export operations.
type Manager struct {
	store       storage.Provider
	snapshotDir string
}

// NewManager creates a snapshot manager writing next to the given config path.
func NewManager(store storage.Provider, configPath string) *Manager {
	return &Manager{
		store:       store,
		snapshotDir: filepath.Join(filepath.Dir(configPath), constants.SnapshotDirName),
	}
}

// GetSnapshotDir returns the snapshot directory path.
func (m *Manager) GetSnapshotDir() string {
	return m.snapshotDir
}

// CreateSnapshot reads every table in full and writes a timestamped JSON
// export, then prunes exports beyond the retention limit.
func (m *Manager) CreateSnapshot() (string, error) {
	if err := os.MkdirAll(m.snapshotDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	nappies, err := m.store.FetchDiapers()
	if err != nil {
		return "", err
	}
	sleeping, err := m.store.FetchSleeps()
	if err != nil {
		return "", err
	}
	drinking, err := m.store.FetchFeeds()
	if err != nil {
		return "", err
	}

	snap := Snapshot{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Nappies:   nappies,
		Sleeping:  sleeping,
		Drinking:  drinking,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	name := constants.SnapshotFilePrefix + snap.CreatedAt.Format("20060102-150405") + constants.SnapshotFileSuffix
	path := filepath.Join(m.snapshotDir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	if err := m.pruneOldSnapshots(); err != nil {
		return path, err
	}
	return path, nil
}

// ListSnapshots returns the available snapshots, newest first.
func (m *Manager) ListSnapshots() ([]SnapshotInfo, error) {
	entries, err := os.ReadDir(m.snapshotDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot directory: %w", err)
	}

	var infos []SnapshotInfo
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, constants.SnapshotFilePrefix) || !strings.HasSuffix(name, constants.SnapshotFileSuffix) {
			continue
		}
		stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.SnapshotFilePrefix), constants.SnapshotFileSuffix)
		ts, err := time.Parse("20060102-150405", stamp)
		if err != nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		infos = append(infos, SnapshotInfo{
			Path:      filepath.Join(m.snapshotDir, name),
			Timestamp: ts,
			Size:      info.Size(),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Timestamp.After(infos[j].Timestamp)
	})
	return infos, nil
}

// ReadSnapshot loads a snapshot file.
func ReadSnapshot(path string) (Snapshot, error) {
	var snap Snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		return snap, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return snap, nil
}

func (m *Manager) pruneOldSnapshots() error {
	infos, err := m.ListSnapshots()
	if err != nil {
		return err
	}
	for i := constants.MaxSnapshots; i < len(infos); i++ {
		if err := os.Remove(infos[i].Path); err != nil {
			return fmt.Errorf("failed to remove old snapshot: %w", err)
		}
	}
	return nil
}
