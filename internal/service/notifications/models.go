package notifications

import (
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// Типы уведомлений
const (
	TypeEmail      = "email"
	TypeSMS        = "sms"
	TypeReminder   = "reminder"
	TypeCompletion = "completion"
)

// Статусы уведомлений
const (
	StatusSent      = "sent"
	StatusScheduled = "scheduled"
)

// Notification запись об отправленном уведомлении
type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	BookingID int64  `json:"booking_id"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ConfirmationParams данные для уведомлений о подтверждении бронирования
type ConfirmationParams struct {
	BookingID          int64
	UserName           string
	Phone              string
	Email              string
	Vehicle            string
	Date               types.DateString
	Time               types.TimeString
	ServiceCenter      string
	ConfirmationNumber string
}

// CompletionParams данные для уведомления о завершении обслуживания
type CompletionParams struct {
	BookingID   int64
	UserName    string
	Email       string
	Phone       string
	Vehicle     string
	ServiceType string
}
