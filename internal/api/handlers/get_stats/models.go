package get_stats

import (
	"github.com/autopilot-ai/AP-SchedulerService/internal/service/bookings"
)

// GetStatsResponse HTTP response model
type GetStatsResponse struct {
	Status string          `json:"status"`
	Stats  *bookings.Stats `json:"stats"`
}
