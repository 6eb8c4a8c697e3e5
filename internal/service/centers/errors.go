package centers

import "errors"

var (
	// ErrCenterNotFound возвращается, когда сервис-центр не найден
	ErrCenterNotFound = errors.New("centers: service center not found")

	// ErrNoCenters возвращается, когда в системе нет ни одного сервис-центра
	ErrNoCenters = errors.New("centers: no service centers configured")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("centers: internal error")
)
