package nlp

import (
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// Поддерживаемые интенты
const (
	IntentBookService   = "book_service"
	IntentCheckBooking  = "check_booking"
	IntentCancelBooking = "cancel_booking"
	IntentUnknown       = "unknown"
)

// Intent результат распознавания намерения пользователя
type Intent struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// Extracted извлеченные из текста сущности запроса на бронирование
type Extracted struct {
	VehicleMake  string           `json:"vehicle_make"`
	VehicleModel string           `json:"vehicle_model"`
	Date         types.DateString `json:"date"`
	Time         types.TimeString `json:"time"`
	ServiceType  string           `json:"service_type"`
}

// ConfidenceScores уверенность распознавания по каждой сущности
type ConfidenceScores struct {
	Vehicle float64 `json:"vehicle"`
	Date    float64 `json:"date"`
	Time    float64 `json:"time"`
	Service float64 `json:"service"`
}

// ParseResult полный результат разбора фразы на естественном языке
type ParseResult struct {
	Success           bool              `json:"success"`
	Intent            string            `json:"intent"`
	OverallConfidence float64           `json:"overall_confidence,omitempty"`
	Extracted         *Extracted        `json:"extracted,omitempty"`
	ConfidenceScores  *ConfidenceScores `json:"confidence_scores,omitempty"`
	Message           string            `json:"message"`
}

// Entities справочники, которые понимает парсер (для обнаружения клиентом)
type Entities struct {
	VehicleMakes  []string           `json:"vehicle_makes"`
	VehicleModels map[string][]string `json:"vehicle_models"`
	ServiceTypes  []string           `json:"service_types"`
	TimeSlots     []types.TimeString `json:"time_slots"`
}
