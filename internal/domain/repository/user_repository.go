package repository

import (
	"context"

	"go-clinic-scheduling/internal/domain/entity"
)

// UserRepository is the identity store: it owns the user id counter and
// enforces username uniqueness at registration.
type UserRepository interface {
	// Register assigns the next user id and inserts the record.
	// Returns ErrUsernameTaken when the username is already in use
	// (case-insensitive).
	Register(ctx context.Context, user *entity.User) error

	// FindByUsername matches usernames case-insensitively.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// All returns every user in insertion order.
	All(ctx context.Context) ([]entity.User, error)

	// Restore replaces the store contents from a loaded snapshot and
	// reinitializes the id counter past the highest id seen.
	Restore(users []entity.User, lastID int64)

	// LastID returns the current id counter for snapshotting.
	LastID() int64
}
