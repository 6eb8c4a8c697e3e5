package get_booking

import (
	"github.com/autopilot-ai/AP-SchedulerService/internal/service/bookings"
)

// GetBookingResponse HTTP response model
type GetBookingResponse struct {
	Status  string           `json:"status"`
	Booking *bookings.Detail `json:"booking"`
}
