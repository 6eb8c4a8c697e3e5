package scheduler

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате (не YYYY-MM-DD)
	ErrInvalidDate = errors.New("scheduler: invalid date")

	// ErrInternal возвращается при внутренних ошибках планировщика
	ErrInternal = errors.New("scheduler: internal error")
)
