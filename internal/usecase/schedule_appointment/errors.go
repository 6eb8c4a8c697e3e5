package schedule_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule_appointment: invalid input data")

	// ErrNoCenters возвращается, когда в системе нет ни одного сервис-центра
	ErrNoCenters = errors.New("schedule_appointment: no service centers available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("schedule_appointment: internal error")
)
