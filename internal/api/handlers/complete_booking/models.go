package complete_booking

// CompleteBookingResponse HTTP response model
type CompleteBookingResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	BookingID int64  `json:"booking_id"`
}
