package entity

import "time"

// SnapshotSchemaVersion is written into every artifact so a reader can
// reject layouts it does not understand instead of misparsing them.
const SnapshotSchemaVersion = 1

// Snapshot is the complete system state as a single durable unit: every
// user, practitioner and appointment plus the id counters. Counters are
// persisted alongside the data so id allocation continues from the correct
// high-water mark after a reload.
type Snapshot struct {
	Version            int            `json:"version"`
	SavedAt            time.Time      `json:"saved_at"`
	Users              []User         `json:"users"`
	Practitioners      []Practitioner `json:"practitioners"`
	Appointments       []Appointment  `json:"appointments"`
	LastUserID         int64          `json:"last_user_id"`
	LastPractitionerID int64          `json:"last_practitioner_id"`
	LastAppointmentID  int64          `json:"last_appointment_id"`
}
