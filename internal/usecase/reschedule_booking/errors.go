package reschedule_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInvalidInterval возвращается при некорректном новом интервале занятия
	ErrInvalidInterval = errors.New("reschedule_booking: invalid booking interval")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrAccessDenied возвращается при попытке перенести чужое бронирование
	ErrAccessDenied = errors.New("reschedule_booking: booking belongs to another user")

	// ErrNotPendingResolution возвращается, когда бронирование не ожидает
	// реакции на блокировку: переносить можно только pending_resolution
	ErrNotPendingResolution = errors.New("reschedule_booking: booking is not pending resolution")

	// ErrDeadlineExpired возвращается, когда срок реакции на блокировку истек
	ErrDeadlineExpired = errors.New("reschedule_booking: resolution deadline has expired")

	// ErrTrainerUnavailable возвращается, когда новый интервал лежит
	// вне смены тренера или в перерыве
	ErrTrainerUnavailable = errors.New("reschedule_booking: trainer is unavailable at requested time")

	// ErrSlotConflict возвращается, когда новый интервал пересекается
	// с активным бронированием тренера
	ErrSlotConflict = errors.New("reschedule_booking: slot conflicts with existing booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
