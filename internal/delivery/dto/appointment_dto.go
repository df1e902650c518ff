package dto

import "time"

// Request DTOs

type BookAppointmentRequest struct {
	PractitionerID int64  `json:"practitioner_id" validate:"required"`
	Time           string `json:"time" validate:"required"`
	Reason         string `json:"reason" validate:"omitempty,max=500"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             int64     `json:"id"`
	PatientID      int64     `json:"patient_id"`
	PractitionerID int64     `json:"practitioner_id"`
	Time           string    `json:"time"`
	Reason         string    `json:"reason,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
