package create_booking

import (
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// Request модель запроса на прямое создание бронирования.
// В отличие от умного назначения визита, бронирование создается ровно
// на запрошенные дату и время, без подбора слота движком.
type Request struct {
	UserName      string           // Имя клиента
	Phone         string           // Телефон (естественный ключ upsert)
	Email         string           // Email
	VehicleMake   string           // Марка автомобиля
	VehicleModel  string           // Модель автомобиля
	VehicleYear   int              // Год выпуска (по умолчанию 2023)
	PreferredDate types.DateString // Дата бронирования (YYYY-MM-DD)
	PreferredTime types.TimeString // Время бронирования (HH:MM)
	ServiceType   string           // Тип обслуживания (по умолчанию "General Service")
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID          int64
	Date               types.DateString
	Time               types.TimeString
	ConfirmationNumber string
}
