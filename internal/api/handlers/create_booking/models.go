package create_booking

import (
	createBooking "github.com/autopilot-ai/AP-SchedulerService/internal/usecase/create_booking"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	UserName      string `json:"user_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	VehicleMake   string `json:"vehicle_make"`
	VehicleModel  string `json:"vehicle_model"`
	VehicleYear   int    `json:"vehicle_year"`
	PreferredDate string `json:"preferred_date"` // "2025-06-10"
	PreferredTime string `json:"preferred_time"` // "10:00"
	ServiceType   string `json:"service_type"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Status             string           `json:"status"`
	Message            string           `json:"message"`
	BookingID          int64            `json:"booking_id"`
	Date               types.DateString `json:"date"`
	Time               types.TimeString `json:"time"`
	ConfirmationNumber string           `json:"confirmation_number"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		UserName:      r.UserName,
		Phone:         r.Phone,
		Email:         r.Email,
		VehicleMake:   r.VehicleMake,
		VehicleModel:  r.VehicleModel,
		VehicleYear:   r.VehicleYear,
		PreferredDate: types.DateString(r.PreferredDate),
		PreferredTime: types.TimeString(r.PreferredTime),
		ServiceType:   r.ServiceType,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Status:             "success",
		Message:            "Booking confirmed successfully!",
		BookingID:          resp.BookingID,
		Date:               resp.Date,
		Time:               resp.Time,
		ConfirmationNumber: resp.ConfirmationNumber,
	}
}
