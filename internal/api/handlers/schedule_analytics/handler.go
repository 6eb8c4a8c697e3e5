package schedule_analytics

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers"
	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	"github.com/autopilot-ai/AP-SchedulerService/internal/service/centers"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

const msgNoCenters = "No service centers available"

type Handler struct {
	optimizer SlotOptimizer
	selector  CenterSelector
	logger    Logger
	now       func() time.Time
}

func NewHandler(optimizer SlotOptimizer, selector CenterSelector, logger Logger) *Handler {
	return &Handler{
		optimizer: optimizer,
		selector:  selector,
		logger:    logger,
		now:       time.Now,
	}
}

// Handle GET /schedule-analytics
// Сводка занятости первого сервис-центра на сегодня и шесть следующих
// дней плюс рекомендация наименее загруженного дня.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	center, err := h.selector.Select(r.Context())
	if err != nil {
		if errors.Is(err, centers.ErrNoCenters) {
			h.logger.Warn("GET /schedule-analytics - No service centers available")
			handlers.RespondNotFound(w, msgNoCenters)
			return
		}
		h.logger.Error("GET /schedule-analytics - Failed to select center: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	today := h.now()
	analytics := make([]DayStats, 0, domain.AssignHorizonDays)

	for i := 0; i < domain.AssignHorizonDays; i++ {
		date := types.NewDateString(today.AddDate(0, 0, i))

		summary, err := h.optimizer.Optimize(r.Context(), date, center.ID)
		if err != nil {
			h.logger.Error("GET /schedule-analytics - Failed to optimize day %s: %v", date, err)
			handlers.RespondInternalError(w)
			return
		}
		analytics = append(analytics, FromDaySummary(summary))
	}

	// Лучший день — минимум занятости; при равенстве первый по порядку
	best := analytics[0]
	for _, day := range analytics[1:] {
		if day.OccupancyPercentage < best.OccupancyPercentage {
			best = day
		}
	}

	handlers.RespondJSON(w, http.StatusOK, ScheduleAnalyticsResponse{
		Status:    "success",
		Next7Days: analytics,
		Recommendation: fmt.Sprintf("Best day to book: %s (%g%% occupied)",
			best.Date, best.OccupancyPercentage),
		BestSlot: best.OffPeakSlot,
	})
}
