package reschedule_booking

import (
	"context"
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)

	// Create создает бронирование; пересечение слотов на уровне БД
	// возвращается как booking.ErrSlotConflict
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)

	// GetActiveByTrainerAndDate получает активные бронирования тренера на дату
	// Внутри транзакции блокирует строки до коммита
	GetActiveByTrainerAndDate(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error)

	// MarkRescheduled переводит pending_resolution-бронирование в rescheduled
	MarkRescheduled(ctx context.Context, id int64) error
}

// ShiftRepository интерфейс репозитория смен тренеров
type ShiftRepository interface {
	GetByTrainerAndWeekday(ctx context.Context, trainerID int64, weekday time.Weekday) (*domain.ShiftSchedule, error)
}

// TransactionManager интерфейс менеджера транзакций
// Создание нового бронирования и закрытие старого - одна атомарная операция
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
