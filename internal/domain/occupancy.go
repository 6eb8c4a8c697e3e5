package domain

import "github.com/autopilot-ai/AP-SchedulerService/pkg/types"

// Occupancy maps each canonical slot to its count of non-cancelled bookings
// for one (date, center) pair. Iterate via CanonicalSlots for deterministic
// order; Go map iteration order is random.
type Occupancy map[types.TimeString]int

// Total returns the summed booking count across all slots
func (o Occupancy) Total() int {
	total := 0
	for _, count := range o {
		total += count
	}
	return total
}

// Get returns the count for a slot, 0 for unknown slots
func (o Occupancy) Get(slot types.TimeString) int {
	return o[slot]
}

// DaySummary aggregates one center's occupancy for a single day
type DaySummary struct {
	Date                types.DateString
	TotalCapacity       int
	TotalBooked         int
	TotalAvailable      int
	OccupancyPercentage float64 // booked/capacity × 100, rounded to 2 decimals
	PeakSlot            types.TimeString
	OffPeakSlot         types.TimeString
	BySlot              Occupancy
}
