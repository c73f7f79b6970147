package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotConflict возвращается, когда интервал уже занят другим активным
	// бронированием того же тренера (exclusion constraint в БД)
	ErrSlotConflict = errors.New("booking.repository: slot conflict")

	// ErrStatusTransition возвращается, когда переход статуса не выполнен,
	// потому что текущий статус бронирования уже изменился
	ErrStatusTransition = errors.New("booking.repository: status transition rejected")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
