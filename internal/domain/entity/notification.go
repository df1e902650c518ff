package entity

import "time"

// Notification is one entry of the append-only event log.
type Notification struct {
	At      time.Time `json:"at"`
	Message string    `json:"message"`
}

// Common notification event labels
const (
	EventAppointmentBooked    = "appointment.booked"
	EventAppointmentCancelled = "appointment.cancelled"
	EventAppointmentCompleted = "appointment.completed"
	EventPractitionerAdded    = "practitioner.added"
	EventPractitionerRemoved  = "practitioner.removed"
	EventUserRegistered       = "user.registered"
)
