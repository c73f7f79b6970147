package create_booking

import (
	"context"
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Create создает бронирование; пересечение слотов на уровне БД
	// возвращается как booking.ErrSlotConflict
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)

	// GetActiveByTrainerAndDate получает активные бронирования тренера на дату
	// Внутри транзакции блокирует строки до коммита
	GetActiveByTrainerAndDate(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error)

	// SumActiveMinutes суммирует минуты активных бронирований пользователя за период
	SumActiveMinutes(ctx context.Context, userID int64, from, to time.Time) (int, error)
}

// ShiftRepository интерфейс репозитория смен тренеров
type ShiftRepository interface {
	GetByTrainerAndWeekday(ctx context.Context, trainerID int64, weekday time.Weekday) (*domain.ShiftSchedule, error)
}

// TrainerRepository интерфейс репозитория тренеров
type TrainerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Trainer, error)
}

// TransactionManager интерфейс менеджера транзакций
// Проверка слота и вставка выполняются в одной сериализуемой транзакции
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
