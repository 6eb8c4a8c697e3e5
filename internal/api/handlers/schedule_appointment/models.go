package schedule_appointment

import (
	scheduleAppointment "github.com/autopilot-ai/AP-SchedulerService/internal/usecase/schedule_appointment"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// ScheduleAppointmentRequest HTTP request model
type ScheduleAppointmentRequest struct {
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

// ScheduleAppointmentResponse HTTP response model
type ScheduleAppointmentResponse struct {
	Status             string                             `json:"status"`
	Message            string                             `json:"message"`
	BookingID          int64                              `json:"booking_id"`
	ConfirmationNumber string                             `json:"confirmation_number"`
	CustomerName       string                             `json:"customer_name"`
	Vehicle            string                             `json:"vehicle"`
	PreferredRequest   scheduleAppointment.Slot           `json:"preferred_request"`
	AssignedSlot       scheduleAppointment.Slot           `json:"assigned_slot"`
	SlotChanged        bool                               `json:"slot_changed"`
	BookingDetails     scheduleAppointment.BookingDetails `json:"booking_details"`
	EstimatedWait      string                             `json:"estimated_wait"`
	EmailConfirmation  string                             `json:"email_confirmation"`
	SMSNotification    string                             `json:"sms_notification"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Дата и время передаются как есть: формальную валидацию выполняет use case.
func (r *ScheduleAppointmentRequest) ToUseCaseRequest() *scheduleAppointment.Request {
	return &scheduleAppointment.Request{
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
func FromUseCaseResponse(resp *scheduleAppointment.Response) *ScheduleAppointmentResponse {
	return &ScheduleAppointmentResponse{
		Status:             "success",
		Message:            "Appointment scheduled successfully!",
		BookingID:          resp.BookingID,
		ConfirmationNumber: resp.ConfirmationNumber,
		CustomerName:       resp.CustomerName,
		Vehicle:            resp.Vehicle,
		PreferredRequest:   resp.PreferredRequest,
		AssignedSlot:       resp.AssignedSlot,
		SlotChanged:        resp.SlotChanged,
		BookingDetails:     resp.BookingDetails,
		EstimatedWait:      resp.EstimatedWait,
		EmailConfirmation:  resp.EmailConfirmation,
		SMSNotification:    resp.SMSNotification,
	}
}
