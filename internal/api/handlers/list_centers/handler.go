package list_centers

import (
	"net/http"

	"github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers"
)

type Handler struct {
	service CentersService
	logger  Logger
}

func NewHandler(service CentersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /service-centers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /service-centers - Failed to list centers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result := make([]CenterResponse, 0, len(list))
	for _, center := range list {
		result = append(result, FromDomain(center))
	}

	handlers.RespondJSON(w, http.StatusOK, ListCentersResponse{
		Status:  "success",
		Total:   len(result),
		Centers: result,
	})
}
