package schedule_appointment

import (
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// Request модель запроса на умное назначение визита
type Request struct {
	UserName      string           // Имя клиента
	Phone         string           // Телефон (естественный ключ upsert)
	Email         string           // Email
	VehicleMake   string           // Марка автомобиля
	VehicleModel  string           // Модель автомобиля
	VehicleYear   int              // Год выпуска (по умолчанию 2023)
	PreferredDate types.DateString // Желаемая дата (YYYY-MM-DD)
	PreferredTime types.TimeString // Желаемое время (HH:MM)
	ServiceType   string           // Тип обслуживания (по умолчанию "General Service")
}

// Slot пара дата/время
type Slot struct {
	Date types.DateString `json:"date"`
	Time types.TimeString `json:"time"`
}

// BookingDetails данные сервис-центра для подтверждения
type BookingDetails struct {
	Date          types.DateString `json:"date"`
	Time          types.TimeString `json:"time"`
	ServiceCenter string           `json:"service_center"`
	Address       string           `json:"address"`
	Phone         string           `json:"phone"`
	City          string           `json:"city"`
}

// Response модель ответа с назначенным визитом.
// SlotChanged сигнализирует клиенту, что движок назначил слот, отличный
// от запрошенного; переполнение никогда не является ошибкой.
type Response struct {
	BookingID          int64
	ConfirmationNumber string
	CustomerName       string
	Vehicle            string
	PreferredRequest   Slot
	AssignedSlot       Slot
	SlotChanged        bool
	BookingDetails     BookingDetails
	EstimatedWait      string
	EmailConfirmation  string
	SMSNotification    string
}
