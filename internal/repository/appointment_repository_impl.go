package repository

import (
	"context"
	"sync"
	"time"

	"go-clinic-scheduling/internal/domain/entity"
	domainRepo "go-clinic-scheduling/internal/domain/repository"
)

type appointmentRepository struct {
	mu           sync.RWMutex
	appointments []entity.Appointment
	lastID       int64
}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Book(ctx context.Context, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Conflict scan and insert form one critical section; two racing
	// bookings for the same practitioner/timestamp cannot both pass.
	// Only scheduled appointments count, a cancelled slot is bookable again.
	for i := range r.appointments {
		a := &r.appointments[i]
		if a.IsScheduled() && a.PractitionerID == appointment.PractitionerID && a.Time.Equal(appointment.Time) {
			return domainRepo.ErrSlotConflict
		}
	}

	r.lastID++
	appointment.ID = r.lastID
	appointment.Status = entity.AppointmentStatusScheduled
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now()
	}
	r.appointments = append(r.appointments, *appointment)
	return nil
}

func (r *appointmentRepository) Cancel(ctx context.Context, id int64) (*entity.Appointment, error) {
	return r.transition(id, func(a *entity.Appointment) { a.Cancel() })
}

func (r *appointmentRepository) Complete(ctx context.Context, id int64) (*entity.Appointment, error) {
	return r.transition(id, func(a *entity.Appointment) { a.Complete() })
}

func (r *appointmentRepository) transition(id int64, apply func(*entity.Appointment)) (*entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appointments {
		if r.appointments[i].ID != id {
			continue
		}
		if !r.appointments[i].IsScheduled() {
			return nil, domainRepo.ErrInvalidTransition
		}
		apply(&r.appointments[i])
		appointment := r.appointments[i]
		return &appointment, nil
	}
	return nil, domainRepo.ErrAppointmentNotFound
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.appointments {
		if r.appointments[i].ID == id {
			appointment := r.appointments[i]
			return &appointment, nil
		}
	}
	return nil, domainRepo.ErrAppointmentNotFound
}

func (r *appointmentRepository) ListForPatient(ctx context.Context, patientID int64) ([]entity.Appointment, error) {
	return r.filter(func(a *entity.Appointment) bool { return a.PatientID == patientID }), nil
}

func (r *appointmentRepository) ListForPractitioner(ctx context.Context, practitionerID int64) ([]entity.Appointment, error) {
	return r.filter(func(a *entity.Appointment) bool { return a.PractitionerID == practitionerID }), nil
}

func (r *appointmentRepository) All(ctx context.Context) ([]entity.Appointment, error) {
	return r.filter(func(*entity.Appointment) bool { return true }), nil
}

func (r *appointmentRepository) filter(keep func(*entity.Appointment) bool) []entity.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Appointment, 0)
	for i := range r.appointments {
		if keep(&r.appointments[i]) {
			out = append(out, r.appointments[i])
		}
	}
	return out
}

func (r *appointmentRepository) ScheduledAt(ctx context.Context, practitionerID int64, at time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.appointments {
		a := &r.appointments[i]
		if a.IsScheduled() && a.PractitionerID == practitionerID && a.Time.Equal(at) {
			return true, nil
		}
	}
	return false, nil
}

func (r *appointmentRepository) Restore(appointments []entity.Appointment, lastID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.appointments = make([]entity.Appointment, len(appointments))
	copy(r.appointments, appointments)

	r.lastID = lastID
	for i := range r.appointments {
		if r.appointments[i].ID > r.lastID {
			r.lastID = r.appointments[i].ID
		}
	}
}

func (r *appointmentRepository) LastID() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastID
}
