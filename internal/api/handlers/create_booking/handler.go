package create_booking

import (
	"errors"
	"net/http"

	"github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers"
	createBooking "github.com/autopilot-ai/AP-SchedulerService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNoCenters          = "no service centers available"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrNoCenters):
			h.logger.Warn("POST /bookings - No service centers available")
			handlers.RespondNotFound(w, msgNoCenters)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: phone=%s, error=%v",
				req.Phone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, date=%s, time=%s",
		result.BookingID, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
