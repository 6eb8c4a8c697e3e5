package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAlreadyCancelled возвращается при попытке отменить отмененное бронирование
	ErrAlreadyCancelled = errors.New("bookings: booking already cancelled")

	// ErrNotCancellable возвращается, когда бронирование нельзя отменить
	ErrNotCancellable = errors.New("bookings: booking cannot be cancelled")

	// ErrNotCompletable возвращается, когда бронирование нельзя завершить
	ErrNotCompletable = errors.New("bookings: booking cannot be completed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
