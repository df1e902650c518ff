package repository

import (
	"context"
	"testing"
	"time"

	"go-clinic-scheduling/internal/domain/entity"
	domainRepo "go-clinic-scheduling/internal/domain/repository"
)

func addPractitioner(t *testing.T, repo domainRepo.PractitionerRepository, userID int64, specialization string) *entity.Practitioner {
	t.Helper()
	practitioner := &entity.Practitioner{
		UserID:         userID,
		Specialization: specialization,
		Slots:          entity.GenerateSlotCatalogue(time.Now()),
	}
	if err := repo.Add(context.Background(), practitioner); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}
	return practitioner
}

func TestAdd_AssignsPractitionerScopedIDs(t *testing.T) {
	repo := NewPractitionerRepository()

	// User ids and practitioner ids are separate counters.
	first := addPractitioner(t, repo, 17, "Cardiology")
	second := addPractitioner(t, repo, 23, "Pediatrics")

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected practitioner ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestRemove_ByPractitionerID(t *testing.T) {
	repo := NewPractitionerRepository()

	practitioner := addPractitioner(t, repo, 1, "Cardiology")

	if err := repo.Remove(context.Background(), practitioner.ID); err != nil {
		t.Fatalf("unexpected remove error: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), practitioner.ID); err != domainRepo.ErrPractitionerNotFound {
		t.Fatalf("expected ErrPractitionerNotFound, got %v", err)
	}
	if err := repo.Remove(context.Background(), practitioner.ID); err != domainRepo.ErrPractitionerNotFound {
		t.Fatalf("expected ErrPractitionerNotFound on second remove, got %v", err)
	}
}

func TestRemove_DoesNotLowerCounter(t *testing.T) {
	repo := NewPractitionerRepository()

	first := addPractitioner(t, repo, 1, "Cardiology")
	if err := repo.Remove(context.Background(), first.ID); err != nil {
		t.Fatalf("unexpected remove error: %v", err)
	}

	second := addPractitioner(t, repo, 2, "Pediatrics")
	if second.ID != 2 {
		t.Fatalf("practitioner id reused after removal: got %d", second.ID)
	}
}

func TestFindByUserID(t *testing.T) {
	repo := NewPractitionerRepository()

	practitioner := addPractitioner(t, repo, 17, "Cardiology")

	found, err := repo.FindByUserID(context.Background(), 17)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != practitioner.ID {
		t.Fatalf("expected practitioner %d, got %d", practitioner.ID, found.ID)
	}

	if _, err := repo.FindByUserID(context.Background(), 99); err != domainRepo.ErrPractitionerNotFound {
		t.Fatalf("expected ErrPractitionerNotFound, got %v", err)
	}
}

func TestAll_InsertionOrderCopy(t *testing.T) {
	repo := NewPractitionerRepository()

	addPractitioner(t, repo, 1, "Cardiology")
	addPractitioner(t, repo, 2, "Orthopedics")

	all, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 || all[0].ID != 1 || all[1].ID != 2 {
		t.Fatalf("unexpected listing: %+v", all)
	}

	// Mutating the returned slice must not affect the store.
	all[0].Specialization = "changed"
	kept, _ := repo.FindByID(context.Background(), 1)
	if kept.Specialization != "Cardiology" {
		t.Fatalf("store mutated through returned copy: %s", kept.Specialization)
	}
}
