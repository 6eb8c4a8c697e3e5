package available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers"
	"github.com/autopilot-ai/AP-SchedulerService/internal/service/centers"
	"github.com/autopilot-ai/AP-SchedulerService/internal/service/scheduler"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

const (
	msgInvalidDate = "invalid date, expected YYYY-MM-DD"
	msgNoCenters   = "No service centers available"
)

type Handler struct {
	optimizer SlotOptimizer
	selector  CenterSelector
	logger    Logger
}

func NewHandler(optimizer SlotOptimizer, selector CenterSelector, logger Logger) *Handler {
	return &Handler{
		optimizer: optimizer,
		selector:  selector,
		logger:    logger,
	}
}

// Handle GET /available-slots/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date := types.DateString(vars["date"])

	center, err := h.selector.Select(r.Context())
	if err != nil {
		if errors.Is(err, centers.ErrNoCenters) {
			h.logger.Warn("GET /available-slots/{date} - No service centers available")
			handlers.RespondNotFound(w, msgNoCenters)
			return
		}
		h.logger.Error("GET /available-slots/{date} - Failed to select center: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	summary, err := h.optimizer.Optimize(r.Context(), date, center.ID)
	if err != nil {
		switch {
		case errors.Is(err, scheduler.ErrInvalidDate):
			h.logger.Warn("GET /available-slots/{date} - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /available-slots/{date} - Failed to optimize day %s: %v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDaySummary(summary, center.Name))
}
