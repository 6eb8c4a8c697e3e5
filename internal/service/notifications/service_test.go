package notifications

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

func newTestService() *Service {
	fixed := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)
	return NewServiceWithClock(nopLogger{}, func() time.Time { return fixed })
}

func confirmationParams(bookingID int64) ConfirmationParams {
	return ConfirmationParams{
		BookingID:          bookingID,
		UserName:           "Priya Sharma",
		Phone:              "+91-9876543210",
		Email:              "priya@example.com",
		Vehicle:            "Tata Nexon",
		Date:               "2025-06-11",
		Time:               "10:00",
		ServiceCenter:      "EY Auto Service Center - Mumbai",
		ConfirmationNumber: "AP-00042",
	}
}

func TestSendConfirmationEmail(t *testing.T) {
	svc := newTestService()

	n := svc.SendConfirmationEmail(confirmationParams(42))

	assert.Equal(t, "EMAIL-42", n.ID)
	assert.Equal(t, TypeEmail, n.Type)
	assert.Equal(t, "priya@example.com", n.To)
	assert.Equal(t, StatusSent, n.Status)
	assert.Equal(t, "2025-06-10 15:30:00", n.Timestamp)
	assert.Contains(t, n.Subject, "AP-00042")
	assert.Contains(t, n.Message, "Tata Nexon")
	assert.Contains(t, n.Message, "EY Auto Service Center - Mumbai")
}

func TestSendConfirmationSMS(t *testing.T) {
	svc := newTestService()

	n := svc.SendConfirmationSMS(confirmationParams(42))

	assert.Equal(t, "SMS-42", n.ID)
	assert.Equal(t, TypeSMS, n.Type)
	assert.Equal(t, "+91-9876543210", n.To)
	assert.Contains(t, n.Message, "www.autopilot-ai.com/booking/AP-00042")
}

func TestSendReminder_Scheduled(t *testing.T) {
	svc := newTestService()

	n := svc.SendReminder(confirmationParams(7))

	assert.Equal(t, "REMINDER-7", n.ID)
	assert.Equal(t, TypeReminder, n.Type)
	assert.Equal(t, StatusScheduled, n.Status)
}

func TestSendCompletion(t *testing.T) {
	svc := newTestService()

	n := svc.SendCompletion(CompletionParams{
		BookingID:   9,
		UserName:    "Priya Sharma",
		Email:       "priya@example.com",
		Phone:       "+91-9876543210",
		Vehicle:     "Tata Nexon",
		ServiceType: "Oil Change",
	})

	assert.Equal(t, "COMPLETE-9", n.ID)
	assert.Equal(t, TypeCompletion, n.Type)
	assert.Contains(t, n.Subject, "Tata Nexon")
	assert.Contains(t, n.Message, "Oil Change")
}

func TestHistory_FiltersByBooking(t *testing.T) {
	svc := newTestService()

	svc.SendConfirmationEmail(confirmationParams(1))
	svc.SendConfirmationSMS(confirmationParams(1))
	svc.SendConfirmationEmail(confirmationParams(2))

	history := svc.History(1)
	require.Len(t, history, 2)
	assert.Equal(t, "EMAIL-1", history[0].ID)
	assert.Equal(t, "SMS-1", history[1].ID)

	assert.Len(t, svc.History(2), 1)
	assert.Empty(t, svc.History(99))
}

func TestAll_ReturnsCopy(t *testing.T) {
	svc := newTestService()

	svc.SendConfirmationEmail(confirmationParams(1))

	all := svc.All()
	require.Len(t, all, 1)

	// Мутация копии не задевает журнал
	all[0].ID = "mutated"
	assert.Equal(t, "EMAIL-1", svc.All()[0].ID)
}

func TestClear(t *testing.T) {
	svc := newTestService()

	svc.SendConfirmationEmail(confirmationParams(1))
	svc.SendConfirmationSMS(confirmationParams(1))

	assert.Equal(t, 2, svc.Clear())
	assert.Empty(t, svc.All())
	assert.Equal(t, 0, svc.Clear())
}
