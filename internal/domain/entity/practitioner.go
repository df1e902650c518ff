package entity

import "time"

// Slot catalogue shape: four fixed consultation times for each of the next
// seven calendar days, 28 slots per practitioner.
var slotHours = []int{9, 11, 14, 16}

const slotDays = 7

// Practitioner is the directory entry for a user holding the practitioner
// role. ID is practitioner-scoped and allocated from its own counter,
// separate from the user id.
type Practitioner struct {
	ID             int64       `json:"id"`
	UserID         int64       `json:"user_id"`
	Specialization string      `json:"specialization"`
	Slots          []time.Time `json:"slots"`
}

// GenerateSlotCatalogue builds the fixed slot catalogue starting at the
// given day. Timestamps are naive local times; the catalogue is immutable
// once attached to a practitioner.
func GenerateSlotCatalogue(start time.Time) []time.Time {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	slots := make([]time.Time, 0, slotDays*len(slotHours))
	for d := 0; d < slotDays; d++ {
		date := day.AddDate(0, 0, d)
		for _, h := range slotHours {
			slots = append(slots, time.Date(date.Year(), date.Month(), date.Day(), h, 0, 0, 0, date.Location()))
		}
	}
	return slots
}
