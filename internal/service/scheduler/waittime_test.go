package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

func TestEstimateWait(t *testing.T) {
	slot := types.TimeString("10:00")

	tests := []struct {
		name  string
		count int
		want  string
	}{
		{name: "empty slot", count: 0, want: "No wait - You'll be first!"},
		{name: "one booking ahead", count: 1, want: "~30 min wait"},
		{name: "two bookings ahead", count: 2, want: "~60 min wait (about 1 hour)"},
		{name: "three bookings ahead", count: 3, want: "~1h 30m wait"},
		{name: "four bookings ahead", count: 4, want: "~2h 0m wait"},
		{name: "full slot", count: 5, want: "~2h 30m wait"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occupancy := domain.Occupancy{slot: tt.count}
			assert.Equal(t, tt.want, EstimateWait(occupancy, slot))
		})
	}
}

func TestEstimateWait_UnknownSlotIsEmpty(t *testing.T) {
	occupancy := domain.Occupancy{"10:00": 3}

	// Для слота без записей занятость нулевая
	assert.Equal(t, "No wait - You'll be first!", EstimateWait(occupancy, "16:00"))
}
