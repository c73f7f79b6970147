package bookings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAccessDenied возвращается при попытке работать с чужим бронированием
	ErrAccessDenied = errors.New("bookings: booking belongs to another user")

	// ErrCannotCancel возвращается при попытке отменить бронирование
	// в терминальном статусе
	ErrCannotCancel = errors.New("bookings: booking cannot be cancelled")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
