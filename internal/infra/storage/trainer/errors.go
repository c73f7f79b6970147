package trainer

import "errors"

var (
	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("trainer.repository: trainer not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("trainer.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("trainer.repository: failed to scan row")
)
