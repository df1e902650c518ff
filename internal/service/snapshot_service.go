package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-clinic-scheduling/internal/domain/entity"
	"go-clinic-scheduling/internal/domain/repository"
	"go-clinic-scheduling/internal/infrastructure/persistence"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// SnapshotService moves state between the in-memory stores and the durable
// artifact. Load happens once at startup, save at shutdown or on an
// explicit admin request; neither sits on the booking path.
type SnapshotService struct {
	log              *logrus.Logger
	store            *persistence.SnapshotStore
	userRepo         repository.UserRepository
	practitionerRepo repository.PractitionerRepository
	appointmentRepo  repository.AppointmentRepository
}

func NewSnapshotService(
	log *logrus.Logger,
	store *persistence.SnapshotStore,
	userRepo repository.UserRepository,
	practitionerRepo repository.PractitionerRepository,
	appointmentRepo repository.AppointmentRepository,
) *SnapshotService {
	return &SnapshotService{
		log:              log,
		store:            store,
		userRepo:         userRepo,
		practitionerRepo: practitionerRepo,
		appointmentRepo:  appointmentRepo,
	}
}

// LoadOrSeed restores the stores from the artifact. Any load failure is
// downgraded to a fresh start with the deterministic starter dataset; the
// process never aborts over an unreadable artifact.
func (s *SnapshotService) LoadOrSeed(ctx context.Context) error {
	snapshot, err := s.store.Load()
	if err != nil {
		if errors.Is(err, persistence.ErrSnapshotNotFound) {
			s.log.Infof("No snapshot at %s, seeding starter data", s.store.Path())
		} else {
			s.log.Warnf("Snapshot unusable, seeding starter data: %+v", err)
		}
		return s.seed(ctx)
	}

	s.userRepo.Restore(snapshot.Users, snapshot.LastUserID)
	s.practitionerRepo.Restore(snapshot.Practitioners, snapshot.LastPractitionerID)
	s.appointmentRepo.Restore(snapshot.Appointments, snapshot.LastAppointmentID)

	s.log.Infof("Snapshot restored: %d users, %d practitioners, %d appointments",
		len(snapshot.Users), len(snapshot.Practitioners), len(snapshot.Appointments))
	return nil
}

// Save gathers the full state and rewrites the artifact.
func (s *SnapshotService) Save(ctx context.Context) error {
	users, err := s.userRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("collect users: %w", err)
	}
	practitioners, err := s.practitionerRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("collect practitioners: %w", err)
	}
	appointments, err := s.appointmentRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("collect appointments: %w", err)
	}

	snapshot := &entity.Snapshot{
		Users:              users,
		Practitioners:      practitioners,
		Appointments:       appointments,
		LastUserID:         s.userRepo.LastID(),
		LastPractitionerID: s.practitionerRepo.LastID(),
		LastAppointmentID:  s.appointmentRepo.LastID(),
	}

	if err := s.store.Save(snapshot); err != nil {
		s.log.Warnf("Failed to save snapshot: %+v", err)
		return err
	}

	s.log.Infof("Snapshot saved to %s", s.store.Path())
	return nil
}

type seedUser struct {
	role           entity.Role
	username       string
	password       string
	firstName      string
	lastName       string
	email          string
	specialization string
}

// The fixed starter dataset: three practitioners with distinct
// specializations, two patients and one administrator, so a fresh system
// is immediately usable.
var starterUsers = []seedUser{
	{role: entity.RolePractitioner, username: "emilysmith", password: "docpass", firstName: "Emily", lastName: "Smith", email: "emily.smith@example.com", specialization: "Cardiology"},
	{role: entity.RolePractitioner, username: "rajiv", password: "docpass", firstName: "Rajiv", lastName: "Patel", email: "rajiv.patel@example.com", specialization: "Orthopedics"},
	{role: entity.RolePractitioner, username: "sarab", password: "docpass", firstName: "Sara", lastName: "Brown", email: "sara.brown@example.com", specialization: "Pediatrics"},
	{role: entity.RoleAdmin, username: "admin", password: "admin123", firstName: "Super", lastName: "Admin", email: "admin@example.com"},
	{role: entity.RolePatient, username: "dharshini", password: "patientpass", firstName: "Dharshini", lastName: "M", email: "dharshini@example.com"},
	{role: entity.RolePatient, username: "rogith", password: "patientpass", firstName: "Rogith", lastName: "M", email: "rogith@example.com"},
}

func (s *SnapshotService) seed(ctx context.Context) error {
	for _, su := range starterUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}

		user := &entity.User{
			Role:         su.role,
			Username:     su.username,
			PasswordHash: string(hash),
			FirstName:    su.firstName,
			LastName:     su.lastName,
			Email:        su.email,
		}
		if err := s.userRepo.Register(ctx, user); err != nil {
			return fmt.Errorf("seed user %s: %w", su.username, err)
		}

		if su.role != entity.RolePractitioner {
			continue
		}
		practitioner := &entity.Practitioner{
			UserID:         user.ID,
			Specialization: su.specialization,
			Slots:          entity.GenerateSlotCatalogue(time.Now()),
		}
		if err := s.practitionerRepo.Add(ctx, practitioner); err != nil {
			return fmt.Errorf("seed practitioner %s: %w", su.username, err)
		}
	}

	s.log.Info("Starter dataset seeded")
	return nil
}
