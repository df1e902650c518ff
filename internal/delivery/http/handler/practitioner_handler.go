package handler

import (
	"encoding/json"
	"net/http"

	"go-clinic-scheduling/internal/delivery/dto"
	"go-clinic-scheduling/internal/domain/repository"
	"go-clinic-scheduling/internal/usecase"
	"go-clinic-scheduling/pkg/response"
	"go-clinic-scheduling/pkg/validator"
)

type PractitionerHandler struct {
	schedulingUsecase usecase.SchedulingUsecase
	validator         *validator.CustomValidator
}

func NewPractitionerHandler(schedulingUsecase usecase.SchedulingUsecase, validator *validator.CustomValidator) *PractitionerHandler {
	return &PractitionerHandler{
		schedulingUsecase: schedulingUsecase,
		validator:         validator,
	}
}

func (h *PractitionerHandler) CreatePractitioner(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePractitionerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	practitioner, err := h.schedulingUsecase.AddPractitioner(r.Context(), &req)
	if err != nil {
		switch err {
		case repository.ErrUsernameTaken:
			response.Conflict(w, "Username already taken")
		default:
			response.InternalServerError(w, "Failed to create practitioner")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Practitioner created successfully", practitioner)
}

func (h *PractitionerHandler) GetAllPractitioners(w http.ResponseWriter, r *http.Request) {
	practitioners, err := h.schedulingUsecase.ListPractitioners(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get practitioners")
		return
	}

	response.Success(w, http.StatusOK, "Practitioners retrieved successfully", practitioners)
}

func (h *PractitionerHandler) GetPractitioner(w http.ResponseWriter, r *http.Request) {
	practitionerID, ok := parseID(w, r)
	if !ok {
		return
	}

	practitioner, err := h.schedulingUsecase.GetPractitioner(r.Context(), practitionerID)
	if err != nil {
		switch err {
		case repository.ErrPractitionerNotFound:
			response.NotFound(w, "Practitioner not found")
		default:
			response.InternalServerError(w, "Failed to get practitioner")
		}
		return
	}

	response.Success(w, http.StatusOK, "Practitioner retrieved successfully", practitioner)
}

func (h *PractitionerHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	practitionerID, ok := parseID(w, r)
	if !ok {
		return
	}

	availability, err := h.schedulingUsecase.GetAvailability(r.Context(), practitionerID)
	if err != nil {
		switch err {
		case repository.ErrPractitionerNotFound:
			response.NotFound(w, "Practitioner not found")
		default:
			response.InternalServerError(w, "Failed to get availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}

func (h *PractitionerHandler) DeletePractitioner(w http.ResponseWriter, r *http.Request) {
	practitionerID, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.schedulingUsecase.RemovePractitioner(r.Context(), practitionerID); err != nil {
		switch err {
		case repository.ErrPractitionerNotFound:
			response.NotFound(w, "Practitioner not found")
		case repository.ErrPractitionerBusy:
			response.Conflict(w, "Practitioner still has scheduled appointments")
		default:
			response.InternalServerError(w, "Failed to remove practitioner")
		}
		return
	}

	response.Success(w, http.StatusOK, "Practitioner removed successfully", nil)
}
