package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"go-clinic-scheduling/internal/domain/entity"
	domainRepo "go-clinic-scheduling/internal/domain/repository"
)

type userRepository struct {
	mu     sync.RWMutex
	users  []entity.User
	lastID int64
}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Register(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Uniqueness check and insert stay under one lock so two concurrent
	// registrations cannot both pass the check.
	for i := range r.users {
		if strings.EqualFold(r.users[i].Username, user.Username) {
			return domainRepo.ErrUsernameTaken
		}
	}

	r.lastID++
	user.ID = r.lastID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if strings.EqualFold(r.users[i].Username, username) {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, domainRepo.ErrUserNotFound
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, domainRepo.ErrUserNotFound
}

func (r *userRepository) All(ctx context.Context) ([]entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *userRepository) Restore(users []entity.User, lastID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = make([]entity.User, len(users))
	copy(r.users, users)

	// Take the stored counter, but never fall below the highest id seen
	// in the data itself.
	r.lastID = lastID
	for i := range r.users {
		if r.users[i].ID > r.lastID {
			r.lastID = r.users[i].ID
		}
	}
}

func (r *userRepository) LastID() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastID
}
