package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

func TestAssign_PreferredSlotFree(t *testing.T) {
	const centerID = int64(1)

	svc := newTestService(newFakeCounter())

	date, slot, err := svc.Assign(context.Background(), "2025-06-10", "10:00", centerID)
	require.NoError(t, err)

	assert.Equal(t, types.DateString("2025-06-10"), date)
	assert.Equal(t, types.TimeString("10:00"), slot)
}

func TestAssign_PreferredSlotFull_SameDayFallback(t *testing.T) {
	const centerID = int64(1)
	preferred := types.DateString("2025-06-10")

	// 10:00 заполнен до отказа, остальные слоты дня свободны
	counter := newFakeCounter()
	counter.set(preferred, "10:00", centerID, domain.SlotCapacity)

	svc := newTestService(counter)

	date, slot, err := svc.Assign(context.Background(), preferred, "10:00", centerID)
	require.NoError(t, err)

	// Дата сохранена, время переназначено
	assert.Equal(t, preferred, date)
	assert.NotEqual(t, types.TimeString("10:00"), slot)
	assert.True(t, domain.IsCanonicalSlot(slot))
}

func TestAssign_SameDayPicksLeastOccupied(t *testing.T) {
	const centerID = int64(1)
	preferred := types.DateString("2025-06-10")

	counter := newFakeCounter()
	for _, slot := range domain.CanonicalSlots {
		counter.set(preferred, slot, centerID, 4)
	}
	counter.set(preferred, "10:00", centerID, domain.SlotCapacity) // предпочтение занято
	counter.set(preferred, "15:00", centerID, 1)                   // наименее загруженный

	svc := newTestService(counter)

	date, slot, err := svc.Assign(context.Background(), preferred, "10:00", centerID)
	require.NoError(t, err)

	assert.Equal(t, preferred, date)
	assert.Equal(t, types.TimeString("15:00"), slot)
}

func TestAssign_SameDayTieBreaksInCanonicalOrder(t *testing.T) {
	const centerID = int64(1)
	preferred := types.DateString("2025-06-10")

	// Предпочтение занято, все остальные слоты одинаково пусты:
	// стабильная сортировка сохраняет канонический порядок
	counter := newFakeCounter()
	counter.set(preferred, "12:00", centerID, domain.SlotCapacity)

	svc := newTestService(counter)

	date, slot, err := svc.Assign(context.Background(), preferred, "12:00", centerID)
	require.NoError(t, err)

	assert.Equal(t, preferred, date)
	assert.Equal(t, types.TimeString("09:00"), slot)
}

func TestAssign_NonCanonicalTimeSkipsExactMatch(t *testing.T) {
	const centerID = int64(1)
	preferred := types.DateString("2025-06-10")

	svc := newTestService(newFakeCounter())

	// 13:00 — обеденный перерыв, не входит в рабочие слоты
	date, slot, err := svc.Assign(context.Background(), preferred, "13:00", centerID)
	require.NoError(t, err)

	assert.Equal(t, preferred, date)
	assert.True(t, domain.IsCanonicalSlot(slot))
}

func TestAssign_DayFull_NextDayFallback(t *testing.T) {
	const centerID = int64(1)
	preferred := types.DateString("2025-06-10")
	nextDay := types.DateString("2025-06-11")

	counter := newFakeCounter()
	counter.fillDay(preferred, centerID)
	// Утро следующего дня тоже занято, первый свободный слот 14:00
	counter.set(nextDay, "09:00", centerID, domain.SlotCapacity)
	counter.set(nextDay, "10:00", centerID, domain.SlotCapacity)
	counter.set(nextDay, "11:00", centerID, domain.SlotCapacity)
	counter.set(nextDay, "12:00", centerID, domain.SlotCapacity)

	svc := newTestService(counter)

	date, slot, err := svc.Assign(context.Background(), preferred, "10:00", centerID)
	require.NoError(t, err)

	assert.Equal(t, nextDay, date)
	assert.Equal(t, types.TimeString("14:00"), slot)
}

func TestAssign_WeekHorizonFallback(t *testing.T) {
	const centerID = int64(1)
	preferred := types.DateString("2025-06-10")

	// Первые три дня заняты полностью, день+3 свободен
	counter := newFakeCounter()
	counter.fillDay("2025-06-10", centerID)
	counter.fillDay("2025-06-11", centerID)
	counter.fillDay("2025-06-12", centerID)

	svc := newTestService(counter)

	date, slot, err := svc.Assign(context.Background(), preferred, "10:00", centerID)
	require.NoError(t, err)

	assert.Equal(t, types.DateString("2025-06-13"), date)
	assert.Equal(t, types.TimeString("09:00"), slot)
}

func TestAssign_FullWeek_OverflowEscapeValve(t *testing.T) {
	const centerID = int64(1)
	preferred := types.DateString("2025-06-10")

	// Вся неделя занята: 40/40 на каждый день горизонта
	counter := newFakeCounter()
	for offset := 0; offset < domain.AssignHorizonDays; offset++ {
		date, err := preferred.AddDays(offset)
		require.NoError(t, err)
		counter.fillDay(date, centerID)
	}

	svc := newTestService(counter)

	// Клапан переполнения: завтра, первый слот, несмотря на занятость
	date, slot, err := svc.Assign(context.Background(), preferred, "10:00", centerID)
	require.NoError(t, err)

	assert.Equal(t, types.DateString("2025-06-11"), date)
	assert.Equal(t, types.TimeString("09:00"), slot)
}

func TestAssign_InvalidDate(t *testing.T) {
	svc := newTestService(newFakeCounter())

	_, _, err := svc.Assign(context.Background(), "10-06-2025", "10:00", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestAssign_Deterministic(t *testing.T) {
	const centerID = int64(1)
	preferred := types.DateString("2025-06-10")

	counter := newFakeCounter()
	counter.set(preferred, "10:00", centerID, domain.SlotCapacity)
	counter.set(preferred, "09:00", centerID, 3)
	counter.set(preferred, "16:00", centerID, 2)

	svc := newTestService(counter)

	firstDate, firstSlot, err := svc.Assign(context.Background(), preferred, "10:00", centerID)
	require.NoError(t, err)

	// Одинаковое состояние занятости дает одинаковый результат
	for i := 0; i < 10; i++ {
		date, slot, err := svc.Assign(context.Background(), preferred, "10:00", centerID)
		require.NoError(t, err)
		assert.Equal(t, firstDate, date)
		assert.Equal(t, firstSlot, slot)
	}
}
