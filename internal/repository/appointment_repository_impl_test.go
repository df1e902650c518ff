package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"go-clinic-scheduling/internal/domain/entity"
	domainRepo "go-clinic-scheduling/internal/domain/repository"
)

func slot(t *testing.T, value string) time.Time {
	t.Helper()
	at, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return at
}

func book(t *testing.T, repo domainRepo.AppointmentRepository, patientID, practitionerID int64, at time.Time) *entity.Appointment {
	t.Helper()
	appointment := &entity.Appointment{
		PatientID:      patientID,
		PractitionerID: practitionerID,
		Time:           at,
		Reason:         "checkup",
	}
	if err := repo.Book(context.Background(), appointment); err != nil {
		t.Fatalf("unexpected booking error: %v", err)
	}
	return appointment
}

func TestBook_AssignsIDAndScheduledStatus(t *testing.T) {
	repo := NewAppointmentRepository()
	at := slot(t, "2025-01-06 09:00")

	appointment := book(t, repo, 1, 1, at)

	if appointment.ID != 1 {
		t.Fatalf("expected id 1, got %d", appointment.ID)
	}
	if appointment.Status != entity.AppointmentStatusScheduled {
		t.Fatalf("expected scheduled status, got %s", appointment.Status)
	}
}

func TestBook_ConflictOnExactTimestamp(t *testing.T) {
	repo := NewAppointmentRepository()
	at := slot(t, "2025-01-06 09:00")

	book(t, repo, 1, 1, at)

	err := repo.Book(context.Background(), &entity.Appointment{PatientID: 2, PractitionerID: 1, Time: at})
	if err != domainRepo.ErrSlotConflict {
		t.Fatalf("expected ErrSlotConflict, got %v", err)
	}
}

func TestBook_NoConflictOneMinuteApart(t *testing.T) {
	repo := NewAppointmentRepository()

	book(t, repo, 1, 1, slot(t, "2025-01-06 09:00"))
	book(t, repo, 2, 1, slot(t, "2025-01-06 09:01"))
}

func TestBook_NoConflictAcrossPractitioners(t *testing.T) {
	repo := NewAppointmentRepository()
	at := slot(t, "2025-01-06 09:00")

	book(t, repo, 1, 1, at)
	book(t, repo, 2, 2, at)
}

func TestBook_CancelFreesSlot(t *testing.T) {
	repo := NewAppointmentRepository()
	at := slot(t, "2025-01-06 09:00")

	first := book(t, repo, 1, 1, at)

	if _, err := repo.Cancel(context.Background(), first.ID); err != nil {
		t.Fatalf("unexpected cancel error: %v", err)
	}

	second := book(t, repo, 2, 1, at)
	if second.ID == first.ID {
		t.Fatalf("appointment id %d reused", first.ID)
	}
	if second.Status != entity.AppointmentStatusScheduled {
		t.Fatalf("expected scheduled status, got %s", second.Status)
	}
}

func TestTransitions_TerminalStatesAreSticky(t *testing.T) {
	repo := NewAppointmentRepository()
	ctx := context.Background()

	cancelled := book(t, repo, 1, 1, slot(t, "2025-01-06 09:00"))
	completed := book(t, repo, 1, 1, slot(t, "2025-01-06 11:00"))

	if _, err := repo.Cancel(ctx, cancelled.ID); err != nil {
		t.Fatalf("unexpected cancel error: %v", err)
	}
	if _, err := repo.Complete(ctx, completed.ID); err != nil {
		t.Fatalf("unexpected complete error: %v", err)
	}

	if _, err := repo.Cancel(ctx, cancelled.ID); err != domainRepo.ErrInvalidTransition {
		t.Fatalf("cancel on cancelled: expected ErrInvalidTransition, got %v", err)
	}
	if _, err := repo.Complete(ctx, cancelled.ID); err != domainRepo.ErrInvalidTransition {
		t.Fatalf("complete on cancelled: expected ErrInvalidTransition, got %v", err)
	}
	if _, err := repo.Cancel(ctx, completed.ID); err != domainRepo.ErrInvalidTransition {
		t.Fatalf("cancel on completed: expected ErrInvalidTransition, got %v", err)
	}

	got, err := repo.FindByID(ctx, cancelled.ID)
	if err != nil {
		t.Fatalf("unexpected lookup error: %v", err)
	}
	if got.Status != entity.AppointmentStatusCancelled {
		t.Fatalf("status changed after rejected transition: %s", got.Status)
	}
}

func TestTransitions_NotFound(t *testing.T) {
	repo := NewAppointmentRepository()

	if _, err := repo.Cancel(context.Background(), 42); err != domainRepo.ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
	if _, err := repo.Complete(context.Background(), 42); err != domainRepo.ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
	if _, err := repo.FindByID(context.Background(), 42); err != domainRepo.ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestBook_ConcurrentRequestsSameSlot(t *testing.T) {
	repo := NewAppointmentRepository()
	at := slot(t, "2025-01-06 09:00")

	const attempts = 50
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Book(context.Background(), &entity.Appointment{
				PatientID:      int64(i + 1),
				PractitionerID: 1,
				Time:           at,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch err {
		case nil:
			succeeded++
		case domainRepo.ErrSlotConflict:
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly 1 successful booking, got %d", succeeded)
	}

	all, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	scheduled := 0
	for i := range all {
		if all[i].IsScheduled() && all[i].Time.Equal(at) {
			scheduled++
		}
	}
	if scheduled != 1 {
		t.Fatalf("expected exactly 1 scheduled appointment at the slot, got %d", scheduled)
	}
}

func TestListings_ExactMembershipAndInsertionOrder(t *testing.T) {
	repo := NewAppointmentRepository()

	a1 := book(t, repo, 1, 1, slot(t, "2025-01-06 09:00"))
	a2 := book(t, repo, 2, 1, slot(t, "2025-01-06 11:00"))
	a3 := book(t, repo, 1, 2, slot(t, "2025-01-06 09:00"))
	a4 := book(t, repo, 1, 1, slot(t, "2025-01-07 09:00"))

	forPatient, err := repo.ListForPatient(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	wantPatient := []int64{a1.ID, a3.ID, a4.ID}
	if len(forPatient) != len(wantPatient) {
		t.Fatalf("expected %d appointments, got %d", len(wantPatient), len(forPatient))
	}
	for i, want := range wantPatient {
		if forPatient[i].ID != want {
			t.Fatalf("position %d: expected id %d, got %d", i, want, forPatient[i].ID)
		}
	}

	forPractitioner, err := repo.ListForPractitioner(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	wantPractitioner := []int64{a1.ID, a2.ID, a4.ID}
	if len(forPractitioner) != len(wantPractitioner) {
		t.Fatalf("expected %d appointments, got %d", len(wantPractitioner), len(forPractitioner))
	}
	for i, want := range wantPractitioner {
		if forPractitioner[i].ID != want {
			t.Fatalf("position %d: expected id %d, got %d", i, want, forPractitioner[i].ID)
		}
	}
}

func TestScheduledAt(t *testing.T) {
	repo := NewAppointmentRepository()
	at := slot(t, "2025-01-06 09:00")

	appointment := book(t, repo, 1, 1, at)

	booked, err := repo.ScheduledAt(context.Background(), 1, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !booked {
		t.Fatal("expected slot to be booked")
	}

	if _, err := repo.Cancel(context.Background(), appointment.ID); err != nil {
		t.Fatalf("unexpected cancel error: %v", err)
	}

	booked, err = repo.ScheduledAt(context.Background(), 1, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booked {
		t.Fatal("expected slot to be free after cancellation")
	}
}

func TestRestore_IDAllocationContinuesPastHighWaterMark(t *testing.T) {
	repo := NewAppointmentRepository()

	appointments := []entity.Appointment{
		{ID: 3, PatientID: 1, PractitionerID: 1, Time: slot(t, "2025-01-06 09:00"), Status: entity.AppointmentStatusScheduled},
		{ID: 7, PatientID: 2, PractitionerID: 1, Time: slot(t, "2025-01-06 11:00"), Status: entity.AppointmentStatusCancelled},
	}

	// Stored counter lower than the data's maximum id; the maximum wins.
	repo.Restore(appointments, 5)

	next := book(t, repo, 1, 2, slot(t, "2025-01-08 09:00"))
	if next.ID != 8 {
		t.Fatalf("expected id 8 after restore, got %d", next.ID)
	}
	if repo.LastID() != 8 {
		t.Fatalf("expected counter 8, got %d", repo.LastID())
	}
}
