package nlp

import (
	nlpService "github.com/autopilot-ai/AP-SchedulerService/internal/service/nlp"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// ParseRequest HTTP request model
type ParseRequest struct {
	Text string `json:"text"`
}

// EntitiesResponse HTTP response model со словарями парсера
type EntitiesResponse struct {
	Status               string              `json:"status"`
	VehicleMakes         []string            `json:"vehicle_makes"`
	VehicleModels        map[string][]string `json:"vehicle_models"`
	ServiceTypes         []string            `json:"service_types"`
	AvailableTimes       []types.TimeString  `json:"available_times"`
	SupportedDateFormats []string            `json:"supported_date_formats"`
}

// FromEntities конвертирует словари парсера в HTTP response
func FromEntities(e nlpService.Entities) *EntitiesResponse {
	return &EntitiesResponse{
		Status:         "success",
		VehicleMakes:   e.VehicleMakes,
		VehicleModels:  e.VehicleModels,
		ServiceTypes:   e.ServiceTypes,
		AvailableTimes: e.TimeSlots,
		SupportedDateFormats: []string{
			"tomorrow",
			"next Monday/Tuesday/etc",
			"YYYY-MM-DD",
			"DD/MM/YYYY",
			"next N days",
		},
	}
}
