package available_slots

import (
	"fmt"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Status              string                   `json:"status"`
	Date                types.DateString         `json:"date"`
	ServiceCenter       string                   `json:"service_center"`
	AvailableSlotsCount int                      `json:"available_slots_count"`
	Occupancy           string                   `json:"occupancy"`
	Slots               map[types.TimeString]int `json:"slots"`
	PeakSlot            types.TimeString         `json:"peak_slot"`
	OffPeakSlot         types.TimeString         `json:"off_peak_slot"`
}

// FromDaySummary конвертирует сводку дня в HTTP response
func FromDaySummary(summary *domain.DaySummary, centerName string) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		Status:              "success",
		Date:                summary.Date,
		ServiceCenter:       centerName,
		AvailableSlotsCount: summary.TotalAvailable,
		Occupancy:           fmt.Sprintf("%g%%", summary.OccupancyPercentage),
		Slots:               summary.BySlot,
		PeakSlot:            summary.PeakSlot,
		OffPeakSlot:         summary.OffPeakSlot,
	}
}
