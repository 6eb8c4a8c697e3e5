package cancel_booking

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	BookingID int64  `json:"booking_id"`
}
