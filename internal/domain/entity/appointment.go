package entity

import "time"

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Appointment is a single booked consultation. Scheduled is the only
// initial state; cancelled and completed are terminal.
type Appointment struct {
	ID             int64             `json:"id"`
	PatientID      int64             `json:"patient_id"`
	PractitionerID int64             `json:"practitioner_id"`
	Time           time.Time         `json:"time"`
	Reason         string            `json:"reason"`
	Status         AppointmentStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
}

// IsScheduled checks if the appointment is still active
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsCancelled checks if the appointment was cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsCompleted checks if the appointment was completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// Cancel moves the appointment to its cancelled terminal state
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// Complete moves the appointment to its completed terminal state
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}
