package converter

import (
	"go-clinic-scheduling/internal/delivery/dto"
	"go-clinic-scheduling/internal/domain/entity"
)

// NotificationsToListResponse converts the notification log, preserving
// insertion order.
func NotificationsToListResponse(notifications []entity.Notification) *dto.NotificationListResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = dto.NotificationResponse{At: n.At, Message: n.Message}
	}
	return &dto.NotificationListResponse{
		Notifications: responses,
		Total:         len(responses),
	}
}
