package converter

import (
	"time"

	"go-clinic-scheduling/internal/delivery/dto"
	"go-clinic-scheduling/internal/domain/entity"
)

// PractitionerToResponse converts a Practitioner entity plus its owning
// user record to a PractitionerResponse DTO.
func PractitionerToResponse(practitioner *entity.Practitioner, user *entity.User) *dto.PractitionerResponse {
	if practitioner == nil {
		return nil
	}

	resp := &dto.PractitionerResponse{
		ID:             practitioner.ID,
		UserID:         practitioner.UserID,
		Specialization: practitioner.Specialization,
		Slots:          FormatSlots(practitioner.Slots),
	}
	if user != nil {
		resp.Username = user.Username
		resp.FullName = user.FullName()
		resp.Email = user.Email
	}
	return resp
}

// FormatSlots renders slot timestamps in the wire layout.
func FormatSlots(slots []time.Time) []string {
	out := make([]string, len(slots))
	for i, slot := range slots {
		out[i] = slot.Format(dto.TimeLayout)
	}
	return out
}
