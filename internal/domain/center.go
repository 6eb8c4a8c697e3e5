package domain

import (
	"time"

	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// ServiceCenter represents a physical service location.
// SlotCapacities is informational schema baggage: actual availability is
// always derived from live booking counts, no read path consults this field.
type ServiceCenter struct {
	ID             int64
	Name           string
	Address        string
	Phone          string
	City           string
	SlotCapacities map[types.TimeString]int
	CreatedAt      time.Time
}

// DefaultSlotCapacities returns the capacity map stored with new centers
func DefaultSlotCapacities() map[types.TimeString]int {
	capacities := make(map[types.TimeString]int, len(CanonicalSlots))
	for _, slot := range CanonicalSlots {
		capacities[slot] = SlotCapacity
	}
	return capacities
}
