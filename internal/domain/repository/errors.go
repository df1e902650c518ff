package repository

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrPractitionerNotFound = errors.New("practitioner not found")
	ErrAppointmentNotFound  = errors.New("appointment not found")

	// ErrSlotConflict is returned when a practitioner already has a
	// scheduled appointment at the exact requested timestamp.
	ErrSlotConflict = errors.New("practitioner already has an appointment at that time")

	// ErrInvalidTransition is returned when cancel/complete is requested
	// on an appointment that is no longer scheduled.
	ErrInvalidTransition = errors.New("appointment is not in scheduled status")

	// ErrPractitionerBusy is returned when removal is requested for a
	// practitioner that still has scheduled appointments.
	ErrPractitionerBusy = errors.New("practitioner still has scheduled appointments")
)
