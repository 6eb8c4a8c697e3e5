package schedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	userRepo "github.com/autopilot-ai/AP-SchedulerService/internal/infra/storage/user"
	vehicleRepo "github.com/autopilot-ai/AP-SchedulerService/internal/infra/storage/vehicle"
	"github.com/autopilot-ai/AP-SchedulerService/internal/service/centers"
	"github.com/autopilot-ai/AP-SchedulerService/internal/service/notifications"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

type fakeUserRepo struct {
	byPhone map[string]*domain.User
	nextID  int64
	created int
}

func (f *fakeUserRepo) GetByPhone(_ context.Context, phone string) (*domain.User, error) {
	u, ok := f.byPhone[phone]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	f.nextID++
	f.created++
	created := *user
	created.ID = f.nextID
	f.byPhone[user.Phone] = &created
	return &created, nil
}

type fakeVehicleRepo struct {
	vehicles map[string]*domain.Vehicle
	nextID   int64
	created  int
}

func vehicleKey(userID int64, make, model string) string {
	return fmt.Sprintf("%d|%s|%s", userID, make, model)
}

func (f *fakeVehicleRepo) GetByOwnerMakeModel(_ context.Context, userID int64, make, model string) (*domain.Vehicle, error) {
	v, ok := f.vehicles[vehicleKey(userID, make, model)]
	if !ok {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return v, nil
}

func (f *fakeVehicleRepo) Create(_ context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	f.nextID++
	f.created++
	created := *vehicle
	created.ID = f.nextID
	f.vehicles[vehicleKey(vehicle.UserID, vehicle.Make, vehicle.Model)] = &created
	return &created, nil
}

type fakeBookingRepo struct {
	nextID  int64
	created []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	created := *booking
	created.ID = f.nextID
	f.created = append(f.created, &created)
	return &created, nil
}

type fakeSelector struct {
	center *domain.ServiceCenter
	err    error
}

func (f *fakeSelector) Select(context.Context) (*domain.ServiceCenter, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.center, nil
}

type fakeSlotEngine struct {
	bookings     *fakeBookingRepo
	assignedDate types.DateString
	assignedTime types.TimeString
	base         domain.Occupancy
	err          error
}

func (f *fakeSlotEngine) Assign(_ context.Context, preferredDate types.DateString, preferredTime types.TimeString, _ int64) (types.DateString, types.TimeString, error) {
	if f.err != nil {
		return "", "", f.err
	}
	if f.assignedDate != "" {
		return f.assignedDate, f.assignedTime, nil
	}
	return preferredDate, preferredTime, nil
}

// Occupancy считается по живому списку созданных бронирований, как в
// настоящем движке поверх репозитория: вставка немедленно видна
func (f *fakeSlotEngine) Occupancy(_ context.Context, date types.DateString, _ int64) (domain.Occupancy, error) {
	occupancy := domain.Occupancy{}
	for slot, count := range f.base {
		occupancy[slot] = count
	}
	for _, b := range f.bookings.created {
		if b.Date == date && b.IsActive() {
			occupancy[b.Time]++
		}
	}
	return occupancy, nil
}

type fakeNotifier struct {
	emails []notifications.ConfirmationParams
	sms    []notifications.ConfirmationParams
}

func (f *fakeNotifier) SendConfirmationEmail(p notifications.ConfirmationParams) notifications.Notification {
	f.emails = append(f.emails, p)
	return notifications.Notification{}
}

func (f *fakeNotifier) SendConfirmationSMS(p notifications.ConfirmationParams) notifications.Notification {
	f.sms = append(f.sms, p)
	return notifications.Notification{}
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type useCaseEnv struct {
	users    *fakeUserRepo
	vehicles *fakeVehicleRepo
	bookings *fakeBookingRepo
	selector *fakeSelector
	engine   *fakeSlotEngine
	notifier *fakeNotifier
	tx       *fakeTxManager
	uc       *UseCase
}

func newTestEnv() *useCaseEnv {
	bookings := &fakeBookingRepo{}
	env := &useCaseEnv{
		users:    &fakeUserRepo{byPhone: make(map[string]*domain.User)},
		vehicles: &fakeVehicleRepo{vehicles: make(map[string]*domain.Vehicle)},
		bookings: bookings,
		selector: &fakeSelector{center: &domain.ServiceCenter{
			ID:      1,
			Name:    "EY Auto Service Center - Mumbai",
			Address: "EY Tower, Bandra Kurla Complex",
			Phone:   "+91-22-6665-5000",
			City:    "Mumbai",
		}},
		engine:   &fakeSlotEngine{bookings: bookings},
		notifier: &fakeNotifier{},
		tx:       &fakeTxManager{},
	}
	env.uc = NewUseCase(
		env.users, env.vehicles, env.bookings,
		env.selector, env.engine, env.notifier, env.tx, nopLogger{})
	return env
}

func validRequest() *Request {
	return &Request{
		UserName:      "Priya Sharma",
		Phone:         "+91-9876543210",
		Email:         "priya@example.com",
		VehicleMake:   "Tata",
		VehicleModel:  "Nexon",
		PreferredDate: "2025-06-10",
		PreferredTime: "10:00",
	}
}

func TestExecute_HappyPath(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.BookingID)
	assert.Equal(t, "AP-00001", resp.ConfirmationNumber)
	assert.Equal(t, "Priya Sharma", resp.CustomerName)
	assert.Equal(t, "Tata Nexon", resp.Vehicle)
	assert.False(t, resp.SlotChanged)
	assert.Equal(t, Slot{Date: "2025-06-10", Time: "10:00"}, resp.AssignedSlot)
	assert.Equal(t, "EY Auto Service Center - Mumbai", resp.BookingDetails.ServiceCenter)
	assert.Equal(t, "Mumbai", resp.BookingDetails.City)
	assert.Equal(t, "No wait - You'll be first!", resp.EstimatedWait)
	assert.Equal(t, "Confirmation sent to priya@example.com", resp.EmailConfirmation)
	assert.Equal(t, "Notification sent to +91-9876543210", resp.SMSNotification)

	// Бронирование подтверждено сразу и создано внутри транзакции
	require.Len(t, env.bookings.created, 1)
	assert.Equal(t, domain.StatusConfirmed, env.bookings.created[0].Status)
	assert.Equal(t, 1, env.tx.calls)
}

func TestExecute_AppliesDefaults(t *testing.T) {
	env := newTestEnv()

	req := validRequest()
	req.ServiceType = ""
	req.VehicleYear = 0

	_, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	booking := env.bookings.created[0]
	assert.Equal(t, domain.DefaultServiceType, booking.ServiceType)

	vehicle, err := env.vehicles.GetByOwnerMakeModel(context.Background(), 1, "Tata", "Nexon")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultVehicleYear, vehicle.Year)
}

func TestExecute_SlotChanged(t *testing.T) {
	env := newTestEnv()
	env.engine.assignedDate = "2025-06-11"
	env.engine.assignedTime = "14:00"

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.SlotChanged)
	assert.Equal(t, Slot{Date: "2025-06-10", Time: "10:00"}, resp.PreferredRequest)
	assert.Equal(t, Slot{Date: "2025-06-11", Time: "14:00"}, resp.AssignedSlot)
	assert.Equal(t, types.DateString("2025-06-11"), env.bookings.created[0].Date)
}

func TestExecute_EstimatedWaitFromOccupancy(t *testing.T) {
	env := newTestEnv()
	env.engine.base = domain.Occupancy{"10:00": 2}

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "~60 min wait (about 1 hour)", resp.EstimatedWait)
}

func TestExecute_WaitEstimateExcludesOwnBooking(t *testing.T) {
	env := newTestEnv()

	// Первый клиент в пустом слоте: занятость снимается до вставки,
	// собственное бронирование не считается очередью
	first, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "No wait - You'll be first!", first.EstimatedWait)

	// Второй клиент в тот же слот видит ровно одного перед собой
	second, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "~30 min wait", second.EstimatedWait)
}

func TestExecute_ValidationFailure_NothingPersisted(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "empty name", mutate: func(r *Request) { r.UserName = "" }},
		{name: "empty phone", mutate: func(r *Request) { r.Phone = "" }},
		{name: "empty email", mutate: func(r *Request) { r.Email = "" }},
		{name: "empty make", mutate: func(r *Request) { r.VehicleMake = "" }},
		{name: "empty model", mutate: func(r *Request) { r.VehicleModel = "" }},
		{name: "empty date", mutate: func(r *Request) { r.PreferredDate = "" }},
		{name: "bad date format", mutate: func(r *Request) { r.PreferredDate = "10-06-2025" }},
		{name: "empty time", mutate: func(r *Request) { r.PreferredTime = "" }},
		{name: "bad time format", mutate: func(r *Request) { r.PreferredTime = "10am" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	assert.Zero(t, env.users.created)
	assert.Zero(t, env.vehicles.created)
	assert.Empty(t, env.bookings.created)
}

func TestExecute_NonCanonicalTimeIsAccepted(t *testing.T) {
	env := newTestEnv()
	env.engine.assignedDate = "2025-06-10"
	env.engine.assignedTime = "14:00"

	// 13:00 — валидный формат, хоть и не рабочий слот: движок переназначит
	req := validRequest()
	req.PreferredTime = "13:00"

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.SlotChanged)
}

func TestExecute_NoCenters(t *testing.T) {
	env := newTestEnv()
	env.selector.err = centers.ErrNoCenters

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoCenters)
	assert.Empty(t, env.bookings.created)
}

func TestExecute_ReusesExistingUserAndVehicle(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Повторное бронирование с тем же телефоном и автомобилем
	_, err = env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, env.users.created)
	assert.Equal(t, 1, env.vehicles.created)
	assert.Len(t, env.bookings.created, 2)
}

func TestExecute_SlotEngineFailure(t *testing.T) {
	env := newTestEnv()
	env.engine.err = errors.New("counter unavailable")

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, env.bookings.created)
}

func TestExecute_SendsBothConfirmations(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, env.notifier.emails, 1)
	require.Len(t, env.notifier.sms, 1)
	assert.Equal(t, "AP-00001", env.notifier.emails[0].ConfirmationNumber)
	assert.Equal(t, "EY Auto Service Center - Mumbai", env.notifier.sms[0].ServiceCenter)
}
