package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-clinic-scheduling/internal/domain/entity"
	"go-clinic-scheduling/internal/infrastructure/persistence"
	"go-clinic-scheduling/internal/repository"
)

func newSnapshotService(t *testing.T, path string) (*SnapshotService, struct {
	users         func() []entity.User
	practitioners func() []entity.Practitioner
	appointments  func() []entity.Appointment
	book          func(patientID, practitionerID int64, at time.Time) *entity.Appointment
}) {
	t.Helper()

	userRepo := repository.NewUserRepository()
	practitionerRepo := repository.NewPractitionerRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	store := persistence.NewSnapshotStore(path)
	svc := NewSnapshotService(quietLogger(), store, userRepo, practitionerRepo, appointmentRepo)

	helpers := struct {
		users         func() []entity.User
		practitioners func() []entity.Practitioner
		appointments  func() []entity.Appointment
		book          func(patientID, practitionerID int64, at time.Time) *entity.Appointment
	}{
		users: func() []entity.User {
			users, err := userRepo.All(context.Background())
			if err != nil {
				t.Fatalf("list users: %v", err)
			}
			return users
		},
		practitioners: func() []entity.Practitioner {
			practitioners, err := practitionerRepo.All(context.Background())
			if err != nil {
				t.Fatalf("list practitioners: %v", err)
			}
			return practitioners
		},
		appointments: func() []entity.Appointment {
			appointments, err := appointmentRepo.All(context.Background())
			if err != nil {
				t.Fatalf("list appointments: %v", err)
			}
			return appointments
		},
		book: func(patientID, practitionerID int64, at time.Time) *entity.Appointment {
			appointment := &entity.Appointment{PatientID: patientID, PractitionerID: practitionerID, Time: at}
			if err := appointmentRepo.Book(context.Background(), appointment); err != nil {
				t.Fatalf("book: %v", err)
			}
			return appointment
		},
	}
	return svc, helpers
}

func TestLoadOrSeed_FreshSystemGetsStarterData(t *testing.T) {
	svc, state := newSnapshotService(t, filepath.Join(t.TempDir(), "missing.json"))

	if err := svc.LoadOrSeed(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	users := state.users()
	if len(users) != 6 {
		t.Fatalf("expected 6 starter users, got %d", len(users))
	}

	roles := map[entity.Role]int{}
	for i := range users {
		roles[users[i].Role]++
	}
	if roles[entity.RolePractitioner] != 3 || roles[entity.RolePatient] != 2 || roles[entity.RoleAdmin] != 1 {
		t.Fatalf("unexpected role split: %+v", roles)
	}

	practitioners := state.practitioners()
	if len(practitioners) != 3 {
		t.Fatalf("expected 3 starter practitioners, got %d", len(practitioners))
	}
	for i := range practitioners {
		if len(practitioners[i].Slots) != 28 {
			t.Fatalf("practitioner %d: expected 28 slots, got %d", practitioners[i].ID, len(practitioners[i].Slots))
		}
	}
}

func TestSaveThenLoad_RoundTripWithIDContinuation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	first, state := newSnapshotService(t, path)
	if err := first.LoadOrSeed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	at := time.Date(2025, 1, 6, 9, 0, 0, 0, time.Local)
	booked := state.book(1, 1, at)

	if err := first.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}

	// A second system restored from the artifact must match the first.
	second, restored := newSnapshotService(t, path)
	if err := second.LoadOrSeed(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(restored.users()) != len(state.users()) {
		t.Fatalf("user count mismatch after reload")
	}
	if len(restored.practitioners()) != len(state.practitioners()) {
		t.Fatalf("practitioner count mismatch after reload")
	}

	appointments := restored.appointments()
	if len(appointments) != 1 {
		t.Fatalf("expected 1 appointment after reload, got %d", len(appointments))
	}
	if appointments[0].ID != booked.ID || !appointments[0].Time.Equal(at) {
		t.Fatalf("appointment fields lost: %+v", appointments[0])
	}

	// Id allocation continues past the persisted high-water mark.
	next := restored.book(2, 2, at)
	if next.ID != booked.ID+1 {
		t.Fatalf("expected id %d after reload, got %d", booked.ID+1, next.ID)
	}
}

func TestLoadOrSeed_CorruptArtifactFallsBackToSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	svc, state := newSnapshotService(t, path)

	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := svc.LoadOrSeed(context.Background()); err != nil {
		t.Fatalf("expected fallback to seed, got %v", err)
	}
	if len(state.users()) != 6 {
		t.Fatalf("expected starter dataset after corrupt load, got %d users", len(state.users()))
	}
}
