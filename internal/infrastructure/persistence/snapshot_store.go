package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-clinic-scheduling/internal/domain/entity"
)

var (
	// ErrSnapshotNotFound means no artifact exists at the given path.
	// Callers treat this as "first run" and seed a fresh system.
	ErrSnapshotNotFound = errors.New("snapshot artifact not found")

	// ErrSnapshotCorrupt means the artifact exists but cannot be decoded
	// or carries an incompatible schema version.
	ErrSnapshotCorrupt = errors.New("snapshot artifact is corrupt or incompatible")
)

// SnapshotStore persists the whole system state as a single JSON artifact.
// Every save rewrites the complete state; there is no incremental path.
type SnapshotStore struct {
	path string
}

func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

func (s *SnapshotStore) Path() string {
	return s.path
}

// Save writes the snapshot to a temp file and renames it over the target,
// so a failed save never truncates the previous artifact.
func (s *SnapshotStore) Save(snapshot *entity.Snapshot) error {
	snapshot.Version = entity.SnapshotSchemaVersion
	snapshot.SavedAt = time.Now()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close snapshot: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Load reads the artifact back. Absence, decode failure and schema
// mismatch are reported as distinct sentinel errors so callers can pick
// the right fallback.
func (s *SnapshotStore) Load() (*entity.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
	}

	var snapshot entity.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
	}

	if snapshot.Version != entity.SnapshotSchemaVersion {
		return nil, fmt.Errorf("%w: schema version %d, want %d", ErrSnapshotCorrupt, snapshot.Version, entity.SnapshotSchemaVersion)
	}
	return &snapshot, nil
}
