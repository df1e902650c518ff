package repository

import (
	"context"

	"go-clinic-scheduling/internal/domain/entity"
)

// PractitionerRepository is the practitioner directory. Practitioner ids
// come from their own counter, separate from user ids.
type PractitionerRepository interface {
	// Add assigns the next practitioner id and inserts the entry.
	Add(ctx context.Context, practitioner *entity.Practitioner) error

	// Remove deletes the entry by practitioner id. Returns
	// ErrPractitionerNotFound when absent. It never touches appointments.
	Remove(ctx context.Context, id int64) error

	FindByID(ctx context.Context, id int64) (*entity.Practitioner, error)

	// FindByUserID resolves the directory entry owned by a user.
	FindByUserID(ctx context.Context, userID int64) (*entity.Practitioner, error)

	// All returns every practitioner in insertion order.
	All(ctx context.Context) ([]entity.Practitioner, error)

	Restore(practitioners []entity.Practitioner, lastID int64)

	// LastID returns the current id counter for snapshotting. Removal
	// never lowers it, practitioner ids are never reused.
	LastID() int64
}
