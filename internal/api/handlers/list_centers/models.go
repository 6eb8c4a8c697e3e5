package list_centers

import (
	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// CenterResponse HTTP model одного сервис-центра
type CenterResponse struct {
	ID             int64                    `json:"id"`
	Name           string                   `json:"name"`
	Address        string                   `json:"address"`
	Phone          string                   `json:"phone"`
	City           string                   `json:"city"`
	AvailableSlots map[types.TimeString]int `json:"available_slots"`
}

// ListCentersResponse HTTP response model
type ListCentersResponse struct {
	Status  string           `json:"status"`
	Total   int              `json:"total"`
	Centers []CenterResponse `json:"centers"`
}

// FromDomain конвертирует сервис-центр в HTTP model
func FromDomain(center *domain.ServiceCenter) CenterResponse {
	return CenterResponse{
		ID:             center.ID,
		Name:           center.Name,
		Address:        center.Address,
		Phone:          center.Phone,
		City:           center.City,
		AvailableSlots: center.SlotCapacities,
	}
}
