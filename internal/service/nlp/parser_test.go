package nlp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// Вторник, чтобы проверять вычисление ближайших дней недели
var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestParser() *Parser {
	return NewParserWithClock(func() time.Time { return testNow })
}

func TestDetectIntent(t *testing.T) {
	parser := newTestParser()

	tests := []struct {
		name       string
		text       string
		intent     string
		confidence float64
	}{
		{name: "book service", text: "I want to book a service", intent: IntentBookService, confidence: 0.95},
		{name: "schedule keyword", text: "Schedule my car for Friday", intent: IntentBookService, confidence: 0.95},
		{name: "check status", text: "check the status please", intent: IntentCheckBooking, confidence: 0.90},
		{name: "cancel", text: "cancel it", intent: IntentCancelBooking, confidence: 0.88},
		{name: "unknown", text: "hello there", intent: IntentUnknown, confidence: 0.0},
		// "booking" содержит "book", поэтому выигрывает booking-интент
		{name: "booking beats check", text: "check my booking", intent: IntentBookService, confidence: 0.95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := parser.DetectIntent(tt.text)
			assert.Equal(t, tt.intent, intent.Intent)
			assert.Equal(t, tt.confidence, intent.Confidence)
		})
	}
}

func TestExtractVehicle(t *testing.T) {
	parser := newTestParser()

	tests := []struct {
		name       string
		text       string
		make       string
		model      string
		confidence float64
	}{
		{name: "make and model", text: "Book my Tata Nexon", make: "Tata", model: "Nexon", confidence: 0.95},
		{name: "make only", text: "my Hyundai please", make: "Hyundai", model: "Unknown", confidence: 0.90},
		{name: "hyphenated model", text: "service for maruti wagon-r", make: "Maruti", model: "Wagon-R", confidence: 0.95},
		{name: "no vehicle", text: "book a service", make: "Unknown", model: "Unknown", confidence: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			make, model, confidence := parser.ExtractVehicle(tt.text)
			assert.Equal(t, tt.make, make)
			assert.Equal(t, tt.model, model)
			assert.Equal(t, tt.confidence, confidence)
		})
	}
}

func TestExtractDate(t *testing.T) {
	parser := newTestParser()

	tests := []struct {
		name       string
		text       string
		date       types.DateString
		confidence float64
	}{
		{name: "tomorrow", text: "book for tomorrow", date: "2025-06-11", confidence: 0.95},
		{name: "next friday", text: "on friday please", date: "2025-06-13", confidence: 0.90},
		{name: "same weekday rolls a week", text: "next tuesday", date: "2025-06-17", confidence: 0.90},
		{name: "iso date", text: "on 2025-11-15", date: "2025-11-15", confidence: 0.95},
		{name: "slash date", text: "15/11/2025 works", date: "2025-11-15", confidence: 0.92},
		{name: "next n days", text: "within next 3 days", date: "2025-06-13", confidence: 0.85},
		{name: "default today", text: "whenever", date: "2025-06-10", confidence: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, confidence := parser.ExtractDate(tt.text)
			assert.Equal(t, tt.date, date)
			assert.Equal(t, tt.confidence, confidence)
		})
	}
}

func TestExtractDate_InvalidSlashDateFallsThrough(t *testing.T) {
	parser := newTestParser()

	// 31/02 не существует, парсер деградирует в сегодняшнюю дату
	date, confidence := parser.ExtractDate("31/02/2025")
	assert.Equal(t, types.DateString("2025-06-10"), date)
	assert.Equal(t, 0.5, confidence)
}

func TestExtractTime(t *testing.T) {
	parser := newTestParser()

	tests := []struct {
		name       string
		text       string
		slot       types.TimeString
		confidence float64
	}{
		{name: "exact slot", text: "at 10:00", slot: "10:00", confidence: 0.95},
		{name: "am format", text: "10 AM works", slot: "10:00", confidence: 0.90},
		{name: "pm format", text: "around 2 PM", slot: "14:00", confidence: 0.90},
		{name: "morning", text: "in the morning", slot: "09:00", confidence: 0.70},
		{name: "afternoon", text: "afternoon is fine", slot: "14:00", confidence: 0.70},
		{name: "evening", text: "evening please", slot: "16:00", confidence: 0.70},
		// 13:00 — обеденный перерыв, не рабочий слот
		{name: "lunch gap falls to default", text: "at 13:00", slot: "10:00", confidence: 0.5},
		{name: "default", text: "anytime", slot: "10:00", confidence: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, confidence := parser.ExtractTime(tt.text)
			assert.Equal(t, tt.slot, slot)
			assert.Equal(t, tt.confidence, confidence)
		})
	}
}

func TestExtractServiceType(t *testing.T) {
	parser := newTestParser()

	serviceType, confidence := parser.ExtractServiceType("need an oil change for my car")
	assert.Equal(t, "Oil Change", serviceType)
	assert.Equal(t, 0.90, confidence)

	serviceType, confidence = parser.ExtractServiceType("book my car")
	assert.Equal(t, "General Service", serviceType)
	assert.Equal(t, 0.5, confidence)
}

func TestParse_BookingRequest(t *testing.T) {
	parser := newTestParser()

	result := parser.Parse("Book Tata Nexon service for tomorrow at 10 AM")

	assert.True(t, result.Success)
	assert.Equal(t, IntentBookService, result.Intent)

	assert.Equal(t, "Tata", result.Extracted.VehicleMake)
	assert.Equal(t, "Nexon", result.Extracted.VehicleModel)
	assert.Equal(t, types.DateString("2025-06-11"), result.Extracted.Date)
	assert.Equal(t, types.TimeString("10:00"), result.Extracted.Time)
	assert.Equal(t, "General Service", result.Extracted.ServiceType)

	assert.Equal(t, 0.95, result.ConfidenceScores.Vehicle)
	assert.Equal(t, 0.95, result.ConfidenceScores.Date)
	assert.Equal(t, 0.90, result.ConfidenceScores.Time)
	assert.Equal(t, 0.5, result.ConfidenceScores.Service)

	// Среднее из четырех оценок
	assert.InDelta(t, 0.825, result.OverallConfidence, 1e-9)
}

func TestParse_NonBookingIntent(t *testing.T) {
	parser := newTestParser()

	result := parser.Parse("cancel please")

	assert.False(t, result.Success)
	assert.Equal(t, IntentCancelBooking, result.Intent)
	assert.Nil(t, result.Extracted)
	assert.Contains(t, result.Message, "cancel_booking")
}

func TestKnownEntities(t *testing.T) {
	parser := newTestParser()

	entities := parser.KnownEntities()

	assert.Len(t, entities.VehicleMakes, len(makeOrder))
	assert.Equal(t, "Tata", entities.VehicleMakes[0])
	assert.Contains(t, entities.ServiceTypes, "oil change")
	assert.Len(t, entities.TimeSlots, 8)
}
