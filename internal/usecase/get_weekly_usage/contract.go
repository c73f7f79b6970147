package get_weekly_usage

import (
	"context"
	"time"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// SumActiveMinutes суммирует минуты активных бронирований пользователя за период
	SumActiveMinutes(ctx context.Context, userID int64, from, to time.Time) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
