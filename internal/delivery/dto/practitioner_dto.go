package dto

// TimeLayout is the wire format for appointment and slot timestamps.
// Times are naive local timestamps, no zone handling.
const TimeLayout = "2006-01-02 15:04"

// Request DTOs

type CreatePractitionerRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=50"`
	Password       string `json:"password" validate:"required,min=6"`
	FirstName      string `json:"first_name" validate:"required,min=1"`
	LastName       string `json:"last_name" validate:"required,min=1"`
	Email          string `json:"email" validate:"required,email"`
	Specialization string `json:"specialization" validate:"required"`
}

// Response DTOs

type PractitionerResponse struct {
	ID             int64    `json:"id"`
	UserID         int64    `json:"user_id"`
	Username       string   `json:"username,omitempty"`
	FullName       string   `json:"full_name,omitempty"`
	Email          string   `json:"email,omitempty"`
	Specialization string   `json:"specialization"`
	Slots          []string `json:"slots,omitempty"`
}

type PractitionerListResponse struct {
	Practitioners []PractitionerResponse `json:"practitioners"`
	Total         int                    `json:"total"`
}

type AvailabilityResponse struct {
	PractitionerID int64    `json:"practitioner_id"`
	AvailableSlots []string `json:"available_slots"`
}
