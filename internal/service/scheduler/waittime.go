package scheduler

import (
	"fmt"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// EstimateWait предсказывает ожидание клиента в слоте по линейной модели:
// ~30 минут обслуживания на каждое бронирование впереди. Это грубая
// оценка, а не симуляция очереди.
func EstimateWait(occupancy domain.Occupancy, slot types.TimeString) string {
	minutes := occupancy.Get(slot) * domain.ServiceMinutesPerBooking

	switch {
	case minutes == 0:
		return "No wait - You'll be first!"
	case minutes <= 30:
		return fmt.Sprintf("~%d min wait", minutes)
	case minutes <= 60:
		return fmt.Sprintf("~%d min wait (about 1 hour)", minutes)
	default:
		return fmt.Sprintf("~%dh %dm wait", minutes/60, minutes%60)
	}
}
