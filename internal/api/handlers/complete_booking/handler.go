package complete_booking

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
	msgNotCompletable   = "booking cannot be completed"
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

// Handle PUT /bookings/{bookingId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{bookingId}/complete - Invalid booking id: %s", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.Complete(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{bookingId}/complete - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrNotCompletable):
			h.logger.Warn("PUT /bookings/{bookingId}/complete - Not completable: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNotCompletable)

		default:
			h.logger.Error("PUT /bookings/{bookingId}/complete - Failed to complete: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{bookingId}/complete - Booking completed: booking_id=%d", booking.ID)
	handlers.RespondJSON(w, http.StatusOK, CompleteBookingResponse{
		Status:    "success",
		Message:   "Completion notification sent",
		BookingID: booking.ID,
	})
}
