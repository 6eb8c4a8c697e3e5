package schedule_analytics

import (
	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// DayStats сводка занятости одного дня
type DayStats struct {
	Date                types.DateString         `json:"date"`
	TotalCapacity       int                      `json:"total_capacity"`
	TotalBooked         int                      `json:"total_booked"`
	TotalAvailable      int                      `json:"total_available"`
	OccupancyPercentage float64                  `json:"occupancy_percentage"`
	PeakSlot            types.TimeString         `json:"peak_slot"`
	OffPeakSlot         types.TimeString         `json:"off_peak_slot"`
	OccupancyBySlot     map[types.TimeString]int `json:"occupancy_by_slot"`
}

// ScheduleAnalyticsResponse HTTP response model
type ScheduleAnalyticsResponse struct {
	Status         string           `json:"status"`
	Next7Days      []DayStats       `json:"next_7_days"`
	Recommendation string           `json:"recommendation"`
	BestSlot       types.TimeString `json:"best_slot"`
}

// FromDaySummary конвертирует сводку дня в модель ответа
func FromDaySummary(summary *domain.DaySummary) DayStats {
	return DayStats{
		Date:                summary.Date,
		TotalCapacity:       summary.TotalCapacity,
		TotalBooked:         summary.TotalBooked,
		TotalAvailable:      summary.TotalAvailable,
		OccupancyPercentage: summary.OccupancyPercentage,
		PeakSlot:            summary.PeakSlot,
		OffPeakSlot:         summary.OffPeakSlot,
		OccupancyBySlot:     summary.BySlot,
	}
}
