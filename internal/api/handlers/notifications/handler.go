package notifications

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers"
	bookingsService "github.com/autopilot-ai/AP-SchedulerService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgBookingNotFound  = "Booking not found"
	msgInternalError    = "internal server error"
)

type Handler struct {
	log       NotificationLog
	reminders ReminderSender
	logger    Logger
}

func NewHandler(log NotificationLog, reminders ReminderSender, logger Logger) *Handler {
	return &Handler{
		log:       log,
		reminders: reminders,
		logger:    logger,
	}
}

// HandleList GET /notifications
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	all := h.log.All()

	handlers.RespondJSON(w, http.StatusOK, ListResponse{
		Status:        "success",
		Total:         len(all),
		Notifications: all,
	})
}

// HandleHistory GET /notifications/{bookingId}
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /notifications/{bookingId} - Invalid booking id: %s", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	history := h.log.History(bookingID)

	handlers.RespondJSON(w, http.StatusOK, HistoryResponse{
		Status:             "success",
		BookingID:          bookingID,
		TotalNotifications: len(history),
		Notifications:      history,
	})
}

// HandleReminder POST /notifications/{bookingId}/reminder
func (h *Handler) HandleReminder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /notifications/{bookingId}/reminder - Invalid booking id: %s", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	notification, err := h.reminders.Remind(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		default:
			h.logger.Error("POST /notifications/{bookingId}/reminder - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ReminderResponse{
		Status:       "success",
		Message:      "Reminder notification sent",
		BookingID:    bookingID,
		Notification: notification,
	})
}

// HandleClear DELETE /notifications
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	count := h.log.Clear()

	h.logger.Info("DELETE /notifications - Cleared %d notifications", count)
	handlers.RespondJSON(w, http.StatusOK, ClearResponse{
		Status:  "success",
		Message: fmt.Sprintf("%d notifications cleared", count),
	})
}
