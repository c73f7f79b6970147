package block_trainer

import (
	"context"
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	"github.com/fitbrawl/GMS-BookingService/internal/integrations/notifier"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetOverlappingConfirmed получает подтвержденные бронирования,
	// пересекающиеся с окном блокировки
	GetOverlappingConfirmed(ctx context.Context, trainerID int64, date time.Time, blockStart, blockEnd int) ([]*domain.Booking, error)

	// MarkPendingResolution переводит бронирование в pending_resolution
	MarkPendingResolution(ctx context.Context, id int64, deadline time.Time, reason *string) error
}

// TrainerRepository интерфейс репозитория тренеров
type TrainerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Trainer, error)
}

// NotificationSender интерфейс клиента сервиса уведомлений
type NotificationSender interface {
	Send(ctx context.Context, notification *notifier.Notification) error
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
