package schedule_appointment

import (
	"errors"
	"net/http"

	"github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers"
	scheduleAppointment "github.com/autopilot-ai/AP-SchedulerService/internal/usecase/schedule_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid input data"
	msgNoCenters          = "no service centers available"
)

type Handler struct {
	useCase ScheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase ScheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /schedule-appointment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ScheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule-appointment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, scheduleAppointment.ErrInvalidInput):
			h.logger.Warn("POST /schedule-appointment - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, scheduleAppointment.ErrNoCenters):
			h.logger.Warn("POST /schedule-appointment - No service centers available")
			handlers.RespondNotFound(w, msgNoCenters)

		default:
			h.logger.Error("POST /schedule-appointment - Failed to schedule: phone=%s, error=%v",
				req.Phone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule-appointment - Scheduled: booking_id=%d, slot=%s %s, changed=%t",
		result.BookingID, result.AssignedSlot.Date, result.AssignedSlot.Time, result.SlotChanged)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
