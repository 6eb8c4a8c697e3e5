package notifications

import (
	notificationsService "github.com/autopilot-ai/AP-SchedulerService/internal/service/notifications"
)

// ListResponse HTTP response model со всеми уведомлениями
type ListResponse struct {
	Status        string                              `json:"status"`
	Total         int                                 `json:"total"`
	Notifications []notificationsService.Notification `json:"notifications"`
}

// HistoryResponse HTTP response model с уведомлениями одного бронирования
type HistoryResponse struct {
	Status             string                              `json:"status"`
	BookingID          int64                               `json:"booking_id"`
	TotalNotifications int                                 `json:"total_notifications"`
	Notifications      []notificationsService.Notification `json:"notifications"`
}

// ClearResponse HTTP response model очистки журнала
type ClearResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ReminderResponse HTTP response model отправки напоминания
type ReminderResponse struct {
	Status       string                            `json:"status"`
	Message      string                            `json:"message"`
	BookingID    int64                             `json:"booking_id"`
	Notification notificationsService.Notification `json:"notification"`
}
