// Package create_booking — прямое создание бронирования на запрошенные
// дату и время, без подбора слота движком и без уведомлений.
package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	userRepo "github.com/autopilot-ai/AP-SchedulerService/internal/infra/storage/user"
	vehicleRepo "github.com/autopilot-ai/AP-SchedulerService/internal/infra/storage/vehicle"
	"github.com/autopilot-ai/AP-SchedulerService/internal/service/centers"
)

// UseCase use case создания бронирования
type UseCase struct {
	userRepo       UserRepository
	vehicleRepo    VehicleRepository
	bookingRepo    BookingRepository
	centerSelector CenterSelector
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	vehicleRepo VehicleRepository,
	bookingRepo BookingRepository,
	centerSelector CenterSelector,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:       userRepo,
		vehicleRepo:    vehicleRepo,
		bookingRepo:    bookingRepo,
		centerSelector: centerSelector,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: phone=%s, vehicle=%s %s, date=%s, time=%s",
		req.Phone, req.VehicleMake, req.VehicleModel, req.PreferredDate, req.PreferredTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Значения по умолчанию для необязательных полей
	applyDefaults(req)

	// 3. Выбираем сервис-центр
	center, err := uc.centerSelector.Select(ctx)
	if err != nil {
		if errors.Is(err, centers.ErrNoCenters) {
			uc.logger.Warn("CreateBooking: no service centers available")
			return nil, ErrNoCenters
		}
		uc.logger.Error("CreateBooking: failed to select center: %v", err)
		return nil, fmt.Errorf("%w: failed to select service center: %v", ErrInternal, err)
	}

	var booking *domain.Booking

	// 4. Upsert пользователя и автомобиля и вставка в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := uc.getOrCreateUser(txCtx, req)
		if err != nil {
			return err
		}

		vehicle, err := uc.getOrCreateVehicle(txCtx, user.ID, req)
		if err != nil {
			return err
		}

		booking, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:          user.ID,
			VehicleID:       vehicle.ID,
			ServiceCenterID: center.ID,
			Date:            req.PreferredDate,
			Time:            req.PreferredTime,
			ServiceType:     req.ServiceType,
			Status:          domain.StatusConfirmed, // в MVP бронирование подтверждается сразу
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", booking.ID)

	return &Response{
		BookingID:          booking.ID,
		Date:               booking.Date,
		Time:               booking.Time,
		ConfirmationNumber: booking.ConfirmationNumber(),
	}, nil
}

// getOrCreateUser возвращает пользователя по телефону, создавая при отсутствии
func (uc *UseCase) getOrCreateUser(ctx context.Context, req *Request) (*domain.User, error) {
	user, err := uc.userRepo.GetByPhone(ctx, req.Phone)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		uc.logger.Error("CreateBooking: failed to get user by phone: %v", err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	created, err := uc.userRepo.Create(ctx, &domain.User{
		Name:  req.UserName,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create user: %v", err)
		return nil, fmt.Errorf("%w: failed to create user: %v", ErrInternal, err)
	}
	return created, nil
}

// getOrCreateVehicle возвращает автомобиль по естественному ключу, создавая
// при отсутствии
func (uc *UseCase) getOrCreateVehicle(ctx context.Context, userID int64, req *Request) (*domain.Vehicle, error) {
	vehicle, err := uc.vehicleRepo.GetByOwnerMakeModel(ctx, userID, req.VehicleMake, req.VehicleModel)
	if err == nil {
		return vehicle, nil
	}
	if !errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
		uc.logger.Error("CreateBooking: failed to get vehicle: %v", err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	created, err := uc.vehicleRepo.Create(ctx, &domain.Vehicle{
		UserID: userID,
		Make:   req.VehicleMake,
		Model:  req.VehicleModel,
		Year:   req.VehicleYear,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create vehicle: %v", err)
		return nil, fmt.Errorf("%w: failed to create vehicle: %v", ErrInternal, err)
	}
	return created, nil
}
