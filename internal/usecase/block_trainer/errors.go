package block_trainer

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("block_trainer: invalid input data")

	// ErrInvalidInterval возвращается при некорректном окне блокировки
	ErrInvalidInterval = errors.New("block_trainer: invalid block interval")

	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("block_trainer: trainer not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("block_trainer: internal error")
)
