package get_available_slots

import (
	"context"
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetActiveByTrainerAndDate получает активные бронирования тренера на дату
	GetActiveByTrainerAndDate(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error)
}

// ShiftRepository интерфейс репозитория смен тренеров
type ShiftRepository interface {
	GetByTrainerAndWeekday(ctx context.Context, trainerID int64, weekday time.Weekday) (*domain.ShiftSchedule, error)
}

// TrainerRepository интерфейс репозитория тренеров
type TrainerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Trainer, error)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
