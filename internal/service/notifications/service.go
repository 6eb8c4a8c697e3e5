package notifications

import (
	"fmt"
	"sync"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Service имитация шлюза email/SMS для MVP. Уведомления не уходят во
// внешний мир: они пишутся в лог и хранятся в памяти процесса до
// перезапуска. Потокобезопасен.
type Service struct {
	mu     sync.Mutex
	sent   []Notification
	logger Logger
	now    func() time.Time
}

// NewService создает сервис уведомлений
func NewService(logger Logger) *Service {
	return &Service{
		logger: logger,
		now:    time.Now,
	}
}

// NewServiceWithClock создает сервис уведомлений с внешними часами (для тестов)
func NewServiceWithClock(logger Logger, now func() time.Time) *Service {
	return &Service{
		logger: logger,
		now:    now,
	}
}

func (s *Service) record(n Notification) Notification {
	n.Timestamp = s.now().Format("2006-01-02 15:04:05")

	s.mu.Lock()
	s.sent = append(s.sent, n)
	s.mu.Unlock()

	s.logger.Info("notification %s (%s) to %s: %s", n.ID, n.Type, n.To, n.Subject)
	return n
}

// SendConfirmationEmail записывает email с подтверждением бронирования
func (s *Service) SendConfirmationEmail(p ConfirmationParams) Notification {
	subject := fmt.Sprintf("AutoPilot AI - Booking Confirmed (#%s)", p.ConfirmationNumber)

	message := fmt.Sprintf(`Dear %s,

Your service appointment has been confirmed!

BOOKING DETAILS

Confirmation Number: %s
Appointment Date: %s
Appointment Time: %s
Vehicle: %s
Service Center: %s
Phone: %s

WHAT TO EXPECT

- Please arrive 5-10 minutes early
- Bring vehicle documents
- Service typically takes 1-2 hours
- We'll notify you when your vehicle is ready

QUESTIONS?

Contact our support team:
support@autopilot-ai.com
1800-AUTO-PILOT
www.autopilot-ai.com

Thank you for choosing AutoPilot AI!

Best regards,
AutoPilot AI Team
`, p.UserName, p.ConfirmationNumber, p.Date, p.Time, p.Vehicle, p.ServiceCenter, p.Phone)

	return s.record(Notification{
		ID:        fmt.Sprintf("EMAIL-%d", p.BookingID),
		Type:      TypeEmail,
		To:        p.Email,
		Subject:   subject,
		Message:   message,
		BookingID: p.BookingID,
		Status:    StatusSent,
	})
}

// SendConfirmationSMS записывает SMS с подтверждением бронирования
func (s *Service) SendConfirmationSMS(p ConfirmationParams) Notification {
	message := fmt.Sprintf(`AutoPilot AI Booking Confirmed!

Booking: %s
Date: %s | Time: %s
Center: %s

Arrive 5-10 min early. Track status: www.autopilot-ai.com/booking/%s

Questions? Call 1800-AUTO-PILOT
`, p.ConfirmationNumber, p.Date, p.Time, p.ServiceCenter, p.ConfirmationNumber)

	return s.record(Notification{
		ID:        fmt.Sprintf("SMS-%d", p.BookingID),
		Type:      TypeSMS,
		To:        p.Phone,
		Subject:   "Booking Confirmation",
		Message:   message,
		BookingID: p.BookingID,
		Status:    StatusSent,
	})
}

// SendReminder записывает напоминание за сутки до визита
func (s *Service) SendReminder(p ConfirmationParams) Notification {
	message := fmt.Sprintf(`Hi %s,

We want to remind you about your upcoming service appointment!

Tomorrow at %s
Your %s
Service Center location confirmed

Please confirm you'll be able to make it by replying to this email or calling us.

Confirmation #: %s

Drive safe!
AutoPilot AI Team
`, p.UserName, p.Time, p.Vehicle, p.ConfirmationNumber)

	return s.record(Notification{
		ID:        fmt.Sprintf("REMINDER-%d", p.BookingID),
		Type:      TypeReminder,
		To:        p.Email,
		Subject:   "Reminder - Your AutoPilot AI Service Tomorrow",
		Message:   message,
		BookingID: p.BookingID,
		Status:    StatusScheduled,
	})
}

// SendCompletion записывает уведомление о завершении обслуживания
func (s *Service) SendCompletion(p CompletionParams) Notification {
	subject := fmt.Sprintf("Your %s service is complete!", p.Vehicle)

	message := fmt.Sprintf(`Dear %s,

Great news! Your %s %s is complete!

SERVICE SUMMARY

Vehicle: %s
Service: %s
Booking ID: %d
Status: Completed

Your vehicle is ready for pickup at your scheduled service center.

We'd love your feedback! Rate us on AutoPilot AI app

Thank you for choosing us!
`, p.UserName, p.Vehicle, p.ServiceType, p.Vehicle, p.ServiceType, p.BookingID)

	return s.record(Notification{
		ID:        fmt.Sprintf("COMPLETE-%d", p.BookingID),
		Type:      TypeCompletion,
		To:        p.Email,
		Subject:   subject,
		Message:   message,
		BookingID: p.BookingID,
		Status:    StatusSent,
	})
}

// All возвращает копию всех записанных уведомлений
func (s *Service) All() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Notification, len(s.sent))
	copy(result, s.sent)
	return result
}

// History возвращает уведомления по конкретному бронированию
func (s *Service) History(bookingID int64) []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Notification, 0)
	for _, n := range s.sent {
		if n.BookingID == bookingID {
			result = append(result, n)
		}
	}
	return result
}

// Clear очищает журнал уведомлений и возвращает число удаленных записей
func (s *Service) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.sent)
	s.sent = nil
	return count
}
