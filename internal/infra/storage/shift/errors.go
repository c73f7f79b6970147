package shift

import "errors"

var (
	// ErrShiftNotFound возвращается, когда у тренера нет смены на день недели
	// (выходной день); usecase'ы трактуют это как пустой список слотов
	ErrShiftNotFound = errors.New("shift.repository: shift not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("shift.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("shift.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("shift.repository: failed to scan row")
)
