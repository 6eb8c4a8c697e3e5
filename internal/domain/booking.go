package domain

import (
	"fmt"
	"time"

	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCompleted BookingStatus = "Completed"
	StatusCancelled BookingStatus = "Cancelled"
)

// ValidStatuses lists every status a booking may carry
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// Booking represents a service booking in the system.
// Bookings are never physically deleted: cancellation and completion
// mutate the status in place.
type Booking struct {
	ID              int64
	UserID          int64
	VehicleID       int64
	ServiceCenterID int64
	Date            types.DateString // stored as YYYY-MM-DD text
	Time            types.TimeString // stored as HH:MM text, one of CanonicalSlots
	ServiceType     string
	Status          BookingStatus
	Notes           *string
	CreatedAt       time.Time
}

// IsActive returns true if the booking counts against slot capacity
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCompleted returns true if the booking can be marked completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// ConfirmationNumber returns the customer-facing confirmation number,
// formatted AP-{id:05d}. Stable across the lifetime of the system.
func (b *Booking) ConfirmationNumber() string {
	return FormatConfirmationNumber(b.ID)
}

// FormatConfirmationNumber renders the confirmation number for a booking id
func FormatConfirmationNumber(bookingID int64) string {
	return fmt.Sprintf("AP-%05d", bookingID)
}

// SlotRef identifies a single slot: (date, time, service center)
type SlotRef struct {
	Date            types.DateString
	Time            types.TimeString
	ServiceCenterID int64
}
