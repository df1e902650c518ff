package repository

import (
	"context"
	"time"

	"go-clinic-scheduling/internal/domain/entity"
)

// AppointmentRepository is the appointment ledger. It owns the appointment
// id counter and enforces the no-double-booking invariant: the conflict
// scan and the insert happen inside one critical section.
type AppointmentRepository interface {
	// Book creates the appointment in scheduled status with the next id.
	// Returns ErrSlotConflict when the practitioner already has a
	// scheduled appointment at exactly the same timestamp.
	Book(ctx context.Context, appointment *entity.Appointment) error

	// Cancel transitions scheduled -> cancelled. Returns
	// ErrAppointmentNotFound or ErrInvalidTransition.
	Cancel(ctx context.Context, id int64) (*entity.Appointment, error)

	// Complete transitions scheduled -> completed. Same guards as Cancel.
	Complete(ctx context.Context, id int64) (*entity.Appointment, error)

	FindByID(ctx context.Context, id int64) (*entity.Appointment, error)

	// ListForPatient returns the patient's appointments in insertion order.
	ListForPatient(ctx context.Context, patientID int64) ([]entity.Appointment, error)

	// ListForPractitioner returns the practitioner's appointments in
	// insertion order.
	ListForPractitioner(ctx context.Context, practitionerID int64) ([]entity.Appointment, error)

	// All returns the full ledger in insertion order.
	All(ctx context.Context) ([]entity.Appointment, error)

	// ScheduledAt reports whether the practitioner has a scheduled
	// appointment at the exact timestamp.
	ScheduledAt(ctx context.Context, practitionerID int64, at time.Time) (bool, error)

	Restore(appointments []entity.Appointment, lastID int64)

	// LastID returns the current id counter for snapshotting.
	LastID() int64
}
