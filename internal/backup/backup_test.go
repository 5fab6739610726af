package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"babylog/internal/models"
	"babylog/internal/storage"
)

func newTestManager(t *testing.T) (*Manager, *storage.JSONStore) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "babylog.json")
	store := storage.NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	return NewManager(store, path), store
}

func TestCreateSnapshot(t *testing.T) {
	m, store := newTestManager(t)

	if err := store.ReplaceDiapers([]models.DiaperRecord{
		{Date: "2024-01-01", Time: "08:00", Changer: "Mum", ContainsWee: true},
	}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if err := store.ReplaceSleeps([]models.SleepRecord{
		{SleepID: 0, SleepStartTime: time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC), SleepLocation: "Moses Basket"},
	}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	path, err := m.CreateSnapshot()
	if err != nil {
		t.Fatalf("create snapshot failed: %v", err)
	}

	snap, err := ReadSnapshot(path)
	if err != nil {
		t.Fatalf("read snapshot failed: %v", err)
	}
	if snap.ID == "" {
		t.Error("snapshot must carry an id")
	}
	if len(snap.Nappies) != 1 || snap.Nappies[0].Key() != "2024-01-01 08:00" {
		t.Errorf("nappies not captured: %+v", snap.Nappies)
	}
	if len(snap.Sleeping) != 1 || snap.Sleeping[0].SleepLocation != "Moses Basket" {
		t.Errorf("sleeping not captured: %+v", snap.Sleeping)
	}
	if len(snap.Drinking) != 0 {
		t.Errorf("expected no feeds, got %+v", snap.Drinking)
	}
}

func TestListSnapshots(t *testing.T) {
	m, _ := newTestManager(t)

	infos, err := m.ListSnapshots()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(infos) != 0 {
		t.Errorf("expected no snapshots before any export, got %d", len(infos))
	}

	path, err := m.CreateSnapshot()
	if err != nil {
		t.Fatalf("create snapshot failed: %v", err)
	}

	infos, err = m.ListSnapshots()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(infos) != 1 || infos[0].Path != path {
		t.Errorf("expected the created snapshot to be listed, got %+v", infos)
	}
	if infos[0].Size == 0 {
		t.Error("snapshot file should not be empty")
	}
}

func TestListSnapshots_IgnoresForeignFiles(t *testing.T) {
	m, _ := newTestManager(t)

	if _, err := m.CreateSnapshot(); err != nil {
		t.Fatalf("create snapshot failed: %v", err)
	}
	foreign := filepath.Join(m.GetSnapshotDir(), "notes.txt")
	if err := os.WriteFile(foreign, []byte("not a snapshot"), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	infos, err := m.ListSnapshots()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(infos) != 1 {
		t.Errorf("foreign files must be ignored, got %d entries", len(infos))
	}
}

func TestReadSnapshot_MissingFile(t *testing.T) {
	if _, err := ReadSnapshot(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected read of a missing snapshot to fail")
	}
}
