package get_bookings

import (
	"github.com/autopilot-ai/AP-SchedulerService/internal/service/bookings"
)

// GetBookingsResponse HTTP response model
type GetBookingsResponse struct {
	Status   string             `json:"status"`
	Total    int                `json:"total"`
	Bookings []*bookings.Detail `json:"bookings"`
}
