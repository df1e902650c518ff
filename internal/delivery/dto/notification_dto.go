package dto

import "time"

type NotificationResponse struct {
	At      time.Time `json:"at"`
	Message string    `json:"message"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
}
