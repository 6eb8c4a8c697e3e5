package bookings

import (
	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// Detail бронирование вместе с данными клиента, автомобиля и сервис-центра
type Detail struct {
	ID            int64                `json:"id"`
	UserName      string               `json:"user_name"`
	Phone         string               `json:"phone"`
	Vehicle       string               `json:"vehicle"`
	Date          types.DateString     `json:"date"`
	Time          types.TimeString     `json:"time"`
	Status        domain.BookingStatus `json:"status"`
	ServiceType   string               `json:"service_type"`
	ServiceCenter string               `json:"service_center"`
}

// Stats сводная статистика бронирований по статусам
type Stats struct {
	TotalBookings int `json:"total_bookings"`
	Confirmed     int `json:"confirmed"`
	Pending       int `json:"pending"`
	Completed     int `json:"completed"`
	Cancelled     int `json:"cancelled"`
}
