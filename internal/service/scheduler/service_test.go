package scheduler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// fakeCounter фейковый репозиторий занятости слотов для тестов
type fakeCounter struct {
	counts map[string]int
	err    error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: make(map[string]int)}
}

func (f *fakeCounter) set(date types.DateString, slot types.TimeString, centerID int64, count int) {
	f.counts[fmt.Sprintf("%s|%s|%d", date, slot, centerID)] = count
}

// fillDay заполняет все слоты дня до отказа
func (f *fakeCounter) fillDay(date types.DateString, centerID int64) {
	for _, slot := range domain.CanonicalSlots {
		f.set(date, slot, centerID, domain.SlotCapacity)
	}
}

func (f *fakeCounter) CountActiveInSlot(_ context.Context, date types.DateString, slot types.TimeString, centerID int64) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[fmt.Sprintf("%s|%s|%d", date, slot, centerID)], nil
}

// nopLogger логгер-заглушка
type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(counter *fakeCounter) *Service {
	return NewService(counter, nopLogger{})
}

func TestIsAvailable(t *testing.T) {
	const centerID = int64(1)
	date := types.DateString("2025-06-10")

	tests := []struct {
		name      string
		count     int
		available bool
	}{
		{name: "empty slot", count: 0, available: true},
		{name: "one below capacity", count: domain.SlotCapacity - 1, available: true},
		{name: "at capacity", count: domain.SlotCapacity, available: false},
		{name: "over capacity", count: domain.SlotCapacity + 1, available: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := newFakeCounter()
			counter.set(date, "10:00", centerID, tt.count)

			svc := newTestService(counter)

			available, err := svc.IsAvailable(context.Background(), date, "10:00", centerID)
			require.NoError(t, err)
			assert.Equal(t, tt.available, available)
		})
	}
}

func TestIsAvailable_CounterError(t *testing.T) {
	counter := newFakeCounter()
	counter.err = errors.New("connection refused")

	svc := newTestService(counter)

	_, err := svc.IsAvailable(context.Background(), "2025-06-10", "10:00", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestOccupancy(t *testing.T) {
	const centerID = int64(1)
	date := types.DateString("2025-06-10")

	counter := newFakeCounter()
	counter.set(date, "09:00", centerID, 2)
	counter.set(date, "14:00", centerID, 5)

	svc := newTestService(counter)

	occupancy, err := svc.Occupancy(context.Background(), date, centerID)
	require.NoError(t, err)

	// Все восемь канонических слотов присутствуют, незанятые с нулем
	assert.Len(t, occupancy, len(domain.CanonicalSlots))
	assert.Equal(t, 2, occupancy.Get("09:00"))
	assert.Equal(t, 5, occupancy.Get("14:00"))
	assert.Equal(t, 0, occupancy.Get("11:00"))
	assert.Equal(t, 7, occupancy.Total())
}
