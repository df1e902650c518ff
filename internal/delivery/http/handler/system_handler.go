package handler

import (
	"net/http"

	"go-clinic-scheduling/internal/service"
	"go-clinic-scheduling/internal/usecase"
	"go-clinic-scheduling/pkg/response"
)

// SystemHandler exposes administrator operations on system state: the
// notification feed and manual snapshot saves.
type SystemHandler struct {
	schedulingUsecase usecase.SchedulingUsecase
	snapshotService   *service.SnapshotService
}

func NewSystemHandler(schedulingUsecase usecase.SchedulingUsecase, snapshotService *service.SnapshotService) *SystemHandler {
	return &SystemHandler{
		schedulingUsecase: schedulingUsecase,
		snapshotService:   snapshotService,
	}
}

func (h *SystemHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.schedulingUsecase.GetNotifications(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get notifications")
		return
	}

	response.Success(w, http.StatusOK, "Notifications retrieved successfully", notifications)
}

func (h *SystemHandler) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := h.snapshotService.Save(r.Context()); err != nil {
		response.InternalServerError(w, "Failed to save snapshot")
		return
	}

	response.Success(w, http.StatusOK, "Snapshot saved successfully", nil)
}
