package reconciler

import (
	"context"
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	"github.com/fitbrawl/GMS-BookingService/internal/integrations/notifier"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListExpiredPendingResolution получает страницу бронирований
	// с истекшим дедлайном блокировки
	ListExpiredPendingResolution(ctx context.Context, now time.Time, limit int) ([]*domain.Booking, error)

	// Cancel переводит бронирование в cancelled
	Cancel(ctx context.Context, id int64, reason string) error

	// CompleteElapsed переводит прошедшие confirmed-занятия в completed
	CompleteElapsed(ctx context.Context, now time.Time) (int64, error)
}

// NotificationSender интерфейс клиента сервиса уведомлений
type NotificationSender interface {
	Send(ctx context.Context, notification *notifier.Notification) error
}

// MetricsRecorder интерфейс для метрик реконсилера
type MetricsRecorder interface {
	IncReconcilerRun()
	AddReconcilerCancelled(count int)
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
