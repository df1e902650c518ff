package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-clinic-scheduling/internal/domain/entity"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewSnapshotStore(path)

	at := time.Date(2025, 1, 6, 9, 0, 0, 0, time.Local)
	snapshot := &entity.Snapshot{
		Users: []entity.User{
			{ID: 1, Role: entity.RolePatient, Username: "alice", PasswordHash: "digest", FirstName: "Alice", LastName: "A", Email: "alice@example.com"},
			{ID: 2, Role: entity.RolePractitioner, Username: "emilysmith", PasswordHash: "digest", FirstName: "Emily", LastName: "Smith", Email: "emily@example.com"},
		},
		Practitioners: []entity.Practitioner{
			{ID: 1, UserID: 2, Specialization: "Cardiology", Slots: []time.Time{at}},
		},
		Appointments: []entity.Appointment{
			{ID: 1, PatientID: 1, PractitionerID: 1, Time: at, Reason: "checkup", Status: entity.AppointmentStatusScheduled},
		},
		LastUserID:         2,
		LastPractitionerID: 1,
		LastAppointmentID:  1,
	}

	if err := store.Save(snapshot); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	if len(loaded.Users) != 2 || len(loaded.Practitioners) != 1 || len(loaded.Appointments) != 1 {
		t.Fatalf("unexpected counts: %d users, %d practitioners, %d appointments",
			len(loaded.Users), len(loaded.Practitioners), len(loaded.Appointments))
	}
	if loaded.Users[0].Username != "alice" || loaded.Users[0].PasswordHash != "digest" {
		t.Fatalf("user fields lost: %+v", loaded.Users[0])
	}
	if loaded.Practitioners[0].Specialization != "Cardiology" {
		t.Fatalf("practitioner fields lost: %+v", loaded.Practitioners[0])
	}
	if !loaded.Appointments[0].Time.Equal(at) {
		t.Fatalf("appointment time lost: %v", loaded.Appointments[0].Time)
	}
	if loaded.LastUserID != 2 || loaded.LastPractitionerID != 1 || loaded.LastAppointmentID != 1 {
		t.Fatalf("counters lost: %+v", loaded)
	}
	if loaded.Version != entity.SnapshotSchemaVersion {
		t.Fatalf("expected schema version %d, got %d", entity.SnapshotSchemaVersion, loaded.Version)
	}
}

func TestSave_OverwritesPriorArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewSnapshotStore(path)

	if err := store.Save(&entity.Snapshot{LastUserID: 1}); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if err := store.Save(&entity.Snapshot{LastUserID: 2}); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if loaded.LastUserID != 2 {
		t.Fatalf("expected latest state, got counter %d", loaded.LastUserID)
	}
}

func TestLoad_NotFound(t *testing.T) {
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "missing.json"))

	_, err := store.Load()
	if !errors.Is(err, ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestLoad_CorruptArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := NewSnapshotStore(path).Load()
	if !errors.Is(err, ErrSnapshotCorrupt) {
		t.Fatalf("expected ErrSnapshotCorrupt, got %v", err)
	}
}

func TestLoad_SchemaVersionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte(`{"version": 99}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := NewSnapshotStore(path).Load()
	if !errors.Is(err, ErrSnapshotCorrupt) {
		t.Fatalf("expected ErrSnapshotCorrupt, got %v", err)
	}
}
