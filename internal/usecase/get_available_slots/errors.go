package get_available_slots

import "errors"

var (
	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("get_available_slots: trainer not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
