package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers"
	"github.com/autopilot-ai/AP-SchedulerService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgBookingNotFound  = "Booking not found"
	msgAlreadyCancelled = "booking is already cancelled"
	msgNotCancellable   = "booking cannot be cancelled"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{bookingId}/cancel - Invalid booking id: %s", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.Cancel(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{bookingId}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAlreadyCancelled):
			h.logger.Warn("PUT /bookings/{bookingId}/cancel - Already cancelled: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgAlreadyCancelled)

		case errors.Is(err, bookings.ErrNotCancellable):
			h.logger.Warn("PUT /bookings/{bookingId}/cancel - Not cancellable: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNotCancellable)

		default:
			h.logger.Error("PUT /bookings/{bookingId}/cancel - Failed to cancel: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{bookingId}/cancel - Booking cancelled: booking_id=%d", booking.ID)
	handlers.RespondJSON(w, http.StatusOK, CancelBookingResponse{
		Status:    "success",
		Message:   "Booking cancelled successfully",
		BookingID: booking.ID,
	})
}
