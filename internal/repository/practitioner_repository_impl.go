package repository

import (
	"context"
	"sync"
	"time"

	"go-clinic-scheduling/internal/domain/entity"
	domainRepo "go-clinic-scheduling/internal/domain/repository"
)

type practitionerRepository struct {
	mu            sync.RWMutex
	practitioners []entity.Practitioner
	lastID        int64
}

func NewPractitionerRepository() domainRepo.PractitionerRepository {
	return &practitionerRepository{}
}

func (r *practitionerRepository) Add(ctx context.Context, practitioner *entity.Practitioner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	practitioner.ID = r.lastID
	r.practitioners = append(r.practitioners, *practitioner)
	return nil
}

func (r *practitionerRepository) Remove(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.practitioners {
		if r.practitioners[i].ID == id {
			r.practitioners = append(r.practitioners[:i], r.practitioners[i+1:]...)
			return nil
		}
	}
	return domainRepo.ErrPractitionerNotFound
}

func (r *practitionerRepository) FindByID(ctx context.Context, id int64) (*entity.Practitioner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.practitioners {
		if r.practitioners[i].ID == id {
			practitioner := r.practitioners[i]
			// Copy the catalogue so callers cannot mutate the stored slice.
			practitioner.Slots = append([]time.Time(nil), r.practitioners[i].Slots...)
			return &practitioner, nil
		}
	}
	return nil, domainRepo.ErrPractitionerNotFound
}

func (r *practitionerRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Practitioner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.practitioners {
		if r.practitioners[i].UserID == userID {
			practitioner := r.practitioners[i]
			practitioner.Slots = append([]time.Time(nil), r.practitioners[i].Slots...)
			return &practitioner, nil
		}
	}
	return nil, domainRepo.ErrPractitionerNotFound
}

func (r *practitionerRepository) All(ctx context.Context) ([]entity.Practitioner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Practitioner, len(r.practitioners))
	copy(out, r.practitioners)
	return out, nil
}

func (r *practitionerRepository) Restore(practitioners []entity.Practitioner, lastID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.practitioners = make([]entity.Practitioner, len(practitioners))
	copy(r.practitioners, practitioners)

	r.lastID = lastID
	for i := range r.practitioners {
		if r.practitioners[i].ID > r.lastID {
			r.lastID = r.practitioners[i].ID
		}
	}
}

func (r *practitionerRepository) LastID() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastID
}
