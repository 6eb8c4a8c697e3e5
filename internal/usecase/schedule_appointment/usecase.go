// Package schedule_appointment — оркестратор умного назначения визита:
// выбор сервис-центра, upsert клиента и автомобиля, подбор слота движком
// и создание подтвержденного бронирования в одной транзакции.
package schedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	userRepo "github.com/autopilot-ai/AP-SchedulerService/internal/infra/storage/user"
	vehicleRepo "github.com/autopilot-ai/AP-SchedulerService/internal/infra/storage/vehicle"
	"github.com/autopilot-ai/AP-SchedulerService/internal/service/centers"
	"github.com/autopilot-ai/AP-SchedulerService/internal/service/notifications"
	"github.com/autopilot-ai/AP-SchedulerService/internal/service/scheduler"
)

// UseCase use case умного назначения визита
type UseCase struct {
	userRepo       UserRepository
	vehicleRepo    VehicleRepository
	bookingRepo    BookingRepository
	centerSelector CenterSelector
	slotEngine     SlotEngine
	notifier       Notifier
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	vehicleRepo VehicleRepository,
	bookingRepo BookingRepository,
	centerSelector CenterSelector,
	slotEngine SlotEngine,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:       userRepo,
		vehicleRepo:    vehicleRepo,
		bookingRepo:    bookingRepo,
		centerSelector: centerSelector,
		slotEngine:     slotEngine,
		notifier:       notifier,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case назначения визита.
// Проверка доступности слота и вставка бронирования выполняются в одной
// сериализуемой транзакции: два конкурентных запроса на последнее место
// в слоте не могут пройти оба.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ScheduleAppointment: phone=%s, vehicle=%s %s, preferred=%s %s",
		req.Phone, req.VehicleMake, req.VehicleModel, req.PreferredDate, req.PreferredTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ScheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Значения по умолчанию для необязательных полей
	applyDefaults(req)

	// 3. Выбираем сервис-центр
	center, err := uc.centerSelector.Select(ctx)
	if err != nil {
		if errors.Is(err, centers.ErrNoCenters) {
			uc.logger.Warn("ScheduleAppointment: no service centers available")
			return nil, ErrNoCenters
		}
		uc.logger.Error("ScheduleAppointment: failed to select center: %v", err)
		return nil, fmt.Errorf("%w: failed to select service center: %v", ErrInternal, err)
	}

	// Переменные для хранения результата транзакции
	var (
		user      *domain.User
		vehicle   *domain.Vehicle
		booking   *domain.Booking
		occupancy domain.Occupancy
	)

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Upsert пользователя по телефону
		user, err = uc.getOrCreateUser(txCtx, req)
		if err != nil {
			return err
		}

		// 4.2. Upsert автомобиля по (владелец, марка, модель)
		vehicle, err = uc.getOrCreateVehicle(txCtx, user.ID, req)
		if err != nil {
			return err
		}

		// 4.3. Подбираем слот движком
		assignedDate, assignedTime, err := uc.slotEngine.Assign(
			txCtx, req.PreferredDate, req.PreferredTime, center.ID)
		if err != nil {
			uc.logger.Error("ScheduleAppointment: slot assignment failed: %v", err)
			return fmt.Errorf("%w: slot assignment failed: %v", ErrInternal, err)
		}

		// 4.4. Занятость назначенного дня снимается до вставки: оценка
		// ожидания не должна учитывать собственное бронирование клиента,
		// первый клиент в пустом слоте не ждет никого
		occupancy, err = uc.slotEngine.Occupancy(txCtx, assignedDate, center.ID)
		if err != nil {
			uc.logger.Error("ScheduleAppointment: failed to get occupancy: %v", err)
			return fmt.Errorf("%w: failed to get occupancy: %v", ErrInternal, err)
		}

		// 4.5. Создаем подтвержденное бронирование
		booking, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:          user.ID,
			VehicleID:       vehicle.ID,
			ServiceCenterID: center.ID,
			Date:            assignedDate,
			Time:            assignedTime,
			ServiceType:     req.ServiceType,
			Status:          domain.StatusConfirmed,
		})
		if err != nil {
			uc.logger.Error("ScheduleAppointment: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// 5. Предсказание ожидания по занятости до вставки
	estimatedWait := scheduler.EstimateWait(occupancy, booking.Time)

	// 6. Записываем подтверждения: email и SMS
	confirmation := notifications.ConfirmationParams{
		BookingID:          booking.ID,
		UserName:           user.Name,
		Phone:              user.Phone,
		Email:              user.Email,
		Vehicle:            vehicle.Label(),
		Date:               booking.Date,
		Time:               booking.Time,
		ServiceCenter:      center.Name,
		ConfirmationNumber: booking.ConfirmationNumber(),
	}
	uc.notifier.SendConfirmationEmail(confirmation)
	uc.notifier.SendConfirmationSMS(confirmation)

	slotChanged := booking.Date != req.PreferredDate || booking.Time != req.PreferredTime
	if slotChanged {
		uc.logger.Info("ScheduleAppointment: booking id=%d slot changed %s %s -> %s %s",
			booking.ID, req.PreferredDate, req.PreferredTime, booking.Date, booking.Time)
	} else {
		uc.logger.Info("ScheduleAppointment: booking id=%d confirmed at preferred slot", booking.ID)
	}

	return &Response{
		BookingID:          booking.ID,
		ConfirmationNumber: booking.ConfirmationNumber(),
		CustomerName:       user.Name,
		Vehicle:            vehicle.Label(),
		PreferredRequest: Slot{
			Date: req.PreferredDate,
			Time: req.PreferredTime,
		},
		AssignedSlot: Slot{
			Date: booking.Date,
			Time: booking.Time,
		},
		SlotChanged: slotChanged,
		BookingDetails: BookingDetails{
			Date:          booking.Date,
			Time:          booking.Time,
			ServiceCenter: center.Name,
			Address:       center.Address,
			Phone:         center.Phone,
			City:          center.City,
		},
		EstimatedWait:     estimatedWait,
		EmailConfirmation: fmt.Sprintf("Confirmation sent to %s", user.Email),
		SMSNotification:   fmt.Sprintf("Notification sent to %s", user.Phone),
	}, nil
}

// getOrCreateUser возвращает пользователя по телефону, создавая при отсутствии
func (uc *UseCase) getOrCreateUser(ctx context.Context, req *Request) (*domain.User, error) {
	user, err := uc.userRepo.GetByPhone(ctx, req.Phone)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		uc.logger.Error("ScheduleAppointment: failed to get user by phone: %v", err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	created, err := uc.userRepo.Create(ctx, &domain.User{
		Name:  req.UserName,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		uc.logger.Error("ScheduleAppointment: failed to create user: %v", err)
		return nil, fmt.Errorf("%w: failed to create user: %v", ErrInternal, err)
	}
	return created, nil
}

// getOrCreateVehicle возвращает автомобиль по естественному ключу, создавая
// при отсутствии. Второй автомобиль той же марки и модели у одного клиента
// схлопнется в существующую запись.
func (uc *UseCase) getOrCreateVehicle(ctx context.Context, userID int64, req *Request) (*domain.Vehicle, error) {
	vehicle, err := uc.vehicleRepo.GetByOwnerMakeModel(ctx, userID, req.VehicleMake, req.VehicleModel)
	if err == nil {
		return vehicle, nil
	}
	if !errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
		uc.logger.Error("ScheduleAppointment: failed to get vehicle: %v", err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	created, err := uc.vehicleRepo.Create(ctx, &domain.Vehicle{
		UserID: userID,
		Make:   req.VehicleMake,
		Model:  req.VehicleModel,
		Year:   req.VehicleYear,
	})
	if err != nil {
		uc.logger.Error("ScheduleAppointment: failed to create vehicle: %v", err)
		return nil, fmt.Errorf("%w: failed to create vehicle: %v", ErrInternal, err)
	}
	return created, nil
}
