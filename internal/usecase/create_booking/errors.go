package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidInterval возвращается при некорректном интервале занятия:
	// нулевая или отрицательная длительность, выход за границы суток,
	// невыровненное по сетке слотов время
	ErrInvalidInterval = errors.New("create_booking: invalid booking interval")

	// ErrInvalidDate возвращается при попытке бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: booking date is in the past")

	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("create_booking: trainer not found")

	// ErrTrainerUnavailable возвращается, когда тренер неактивен, не работает
	// в этот день или запрошенный интервал лежит вне смены либо в перерыве
	ErrTrainerUnavailable = errors.New("create_booking: trainer is unavailable at requested time")

	// ErrClassTypeMismatch возвращается, когда тренер не ведет занятия этого типа
	ErrClassTypeMismatch = errors.New("create_booking: trainer does not serve this class type")

	// ErrSlotConflict возвращается, когда запрошенный интервал пересекается
	// с активным бронированием тренера
	ErrSlotConflict = errors.New("create_booking: slot conflicts with existing booking")

	// ErrWeeklyCapExceeded возвращается, когда бронирование превышает
	// недельный лимит пользователя
	ErrWeeklyCapExceeded = errors.New("create_booking: weekly usage cap exceeded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
