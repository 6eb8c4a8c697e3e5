package create_booking

import (
	"fmt"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserName == "" {
		return fmt.Errorf("%w: user_name is required", ErrInvalidInput)
	}

	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if req.VehicleMake == "" {
		return fmt.Errorf("%w: vehicle_make is required", ErrInvalidInput)
	}

	if req.VehicleModel == "" {
		return fmt.Errorf("%w: vehicle_model is required", ErrInvalidInput)
	}

	if req.PreferredDate.IsZero() {
		return fmt.Errorf("%w: preferred_date is required", ErrInvalidInput)
	}

	if err := req.PreferredDate.Validate(); err != nil {
		return fmt.Errorf("%w: invalid preferred_date format: %v", ErrInvalidInput, err)
	}

	if req.PreferredTime.IsZero() {
		return fmt.Errorf("%w: preferred_time is required", ErrInvalidInput)
	}

	if err := req.PreferredTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid preferred_time format: %v", ErrInvalidInput, err)
	}

	return nil
}

// applyDefaults подставляет значения по умолчанию в необязательные поля
func applyDefaults(req *Request) {
	if req.VehicleYear == 0 {
		req.VehicleYear = domain.DefaultVehicleYear
	}
	if req.ServiceType == "" {
		req.ServiceType = domain.DefaultServiceType
	}
}
