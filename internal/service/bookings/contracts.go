package bookings

import (
	"context"
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByTrainerAndPeriod(ctx context.Context, trainerID int64, from, to time.Time) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
