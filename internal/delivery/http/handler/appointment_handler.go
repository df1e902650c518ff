package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-clinic-scheduling/internal/delivery/dto"
	"go-clinic-scheduling/internal/domain/repository"
	"go-clinic-scheduling/internal/usecase"
	"go-clinic-scheduling/pkg/response"
	"go-clinic-scheduling/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	schedulingUsecase usecase.SchedulingUsecase
	validator         *validator.CustomValidator
}

func NewAppointmentHandler(schedulingUsecase usecase.SchedulingUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		schedulingUsecase: schedulingUsecase,
		validator:         validator,
	}
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.schedulingUsecase.BookAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case repository.ErrUserNotFound:
			response.NotFound(w, "Patient not found")
		case repository.ErrPractitionerNotFound:
			response.NotFound(w, "Practitioner not found")
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Invalid time format, use YYYY-MM-DD HH:MM", nil)
		case repository.ErrSlotConflict:
			response.Conflict(w, "Practitioner already has an appointment at that time")
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := parseID(w, r)
	if !ok {
		return
	}

	appointment, err := h.schedulingUsecase.CancelAppointment(r.Context(), appointmentID)
	if err != nil {
		h.writeTransitionError(w, err, "Failed to cancel appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}

func (h *AppointmentHandler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := parseID(w, r)
	if !ok {
		return
	}

	appointment, err := h.schedulingUsecase.CompleteAppointment(r.Context(), appointmentID)
	if err != nil {
		h.writeTransitionError(w, err, "Failed to complete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment completed successfully", appointment)
}

func (h *AppointmentHandler) writeTransitionError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case repository.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case repository.ErrInvalidTransition:
		response.Conflict(w, "Appointment is not in scheduled status")
	case usecase.ErrAppointmentNotOwned:
		response.Forbidden(w, "Appointment does not belong to you")
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := parseID(w, r)
	if !ok {
		return
	}

	appointment, err := h.schedulingUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		switch err {
		case repository.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.schedulingUsecase.GetMyAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetMySchedule(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.schedulingUsecase.GetMySchedule(r.Context())
	if err != nil {
		switch err {
		case repository.ErrPractitionerNotFound:
			response.NotFound(w, "Practitioner not found")
		default:
			response.InternalServerError(w, "Failed to get schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.schedulingUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetAppointmentsForPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parseID(w, r)
	if !ok {
		return
	}

	appointments, err := h.schedulingUsecase.GetAppointmentsForPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetAppointmentsForPractitioner(w http.ResponseWriter, r *http.Request) {
	practitionerID, ok := parseID(w, r)
	if !ok {
		return
	}

	appointments, err := h.schedulingUsecase.GetAppointmentsForPractitioner(r.Context(), practitionerID)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id", nil)
		return 0, false
	}
	return id, true
}
