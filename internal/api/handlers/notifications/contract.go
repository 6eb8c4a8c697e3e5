package notifications

import (
	"context"

	notificationsService "github.com/autopilot-ai/AP-SchedulerService/internal/service/notifications"
)

type NotificationLog interface {
	All() []notificationsService.Notification
	History(bookingID int64) []notificationsService.Notification
	Clear() int
}

type ReminderSender interface {
	Remind(ctx context.Context, id int64) (notificationsService.Notification, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
