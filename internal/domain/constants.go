package domain

import "github.com/autopilot-ai/AP-SchedulerService/pkg/types"

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Константы вместимости
const (
	// SlotCapacity максимум активных бронирований в одном слоте
	// (дата, время, сервис-центр)
	SlotCapacity = 5

	// SlotsPerDay количество слотов обслуживания в течение дня
	SlotsPerDay = 8

	// DayCapacity суммарная вместимость сервис-центра за день
	DayCapacity = SlotsPerDay * SlotCapacity

	// ServiceMinutesPerBooking линейная оценка времени обслуживания
	// одного бронирования, используется предсказанием времени ожидания
	ServiceMinutesPerBooking = 30

	// AssignHorizonDays граница поиска слота: предпочтительный день
	// плюс шесть следующих
	AssignHorizonDays = 7
)

// CanonicalSlots фиксированный набор слотов дня в каноническом порядке.
// Разрыв 12:00 → 14:00 намеренный: обеденный перерыв сервис-центра.
var CanonicalSlots = []types.TimeString{
	"09:00", "10:00", "11:00", "12:00",
	"14:00", "15:00", "16:00", "17:00",
}

// IsCanonicalSlot проверяет, что время входит в фиксированный набор слотов
func IsCanonicalSlot(t types.TimeString) bool {
	for _, slot := range CanonicalSlots {
		if slot == t {
			return true
		}
	}
	return false
}

// DefaultServiceType тип обслуживания по умолчанию
const DefaultServiceType = "General Service"

// DefaultVehicleYear год выпуска по умолчанию, если клиент его не указал
const DefaultVehicleYear = 2023
