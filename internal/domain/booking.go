package domain

import (
	"time"

	"github.com/fitbrawl/GMS-BookingService/pkg/interval"
	"github.com/fitbrawl/GMS-BookingService/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	// StatusConfirmed подтвержденное бронирование
	StatusConfirmed BookingStatus = "confirmed"
	// StatusPendingResolution бронирование затронуто блокировкой тренера,
	// пользователь должен перенести или отменить его до дедлайна
	StatusPendingResolution BookingStatus = "pending_resolution"
	// StatusRescheduled бронирование перенесено на другой слот (терминальный,
	// хранится для истории; вместо него создается новое confirmed-бронирование)
	StatusRescheduled BookingStatus = "rescheduled"
	// StatusCancelled бронирование отменено пользователем, администратором
	// или автоматически по истечении дедлайна (терминальный)
	StatusCancelled BookingStatus = "cancelled"
	// StatusCompleted занятие состоялось (терминальный)
	StatusCompleted BookingStatus = "completed"
)

// allowedTransitions таблица разрешенных переходов статусов
// Из терминальных статусов переходов нет: вместо возврата в confirmed
// всегда создается новое бронирование, история остается неизменной
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusConfirmed:         {StatusPendingResolution, StatusCancelled, StatusCompleted},
	StatusPendingResolution: {StatusRescheduled, StatusCancelled},
	StatusRescheduled:       {},
	StatusCancelled:         {},
	StatusCompleted:         {},
}

// CanTransitionTo возвращает true, если переход из s в target разрешен
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal возвращает true для терминальных статусов
func (s BookingStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// IsValid возвращает true для известных статусов
func (s BookingStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// Booking бронирование занятия с тренером
type Booking struct {
	ID              int64
	UserID          int64
	TrainerID       int64
	ClassType       string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Денормализованное имя тренера для истории
	TrainerName string

	// Дедлайн реакции пользователя на блокировку (только для pending_resolution)
	BlockDeadline *time.Time
	// Причина блокировки, указанная администратором
	BlockReason *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime возвращает время окончания занятия
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// Interval возвращает интервал бронирования в минутах с начала суток
func (b *Booking) Interval() (interval.Interval, error) {
	start, err := b.StartTime.Minutes()
	if err != nil {
		return interval.Interval{}, err
	}
	return interval.New(start, start+b.DurationMinutes)
}

// IsActive возвращает true, если бронирование занимает слот тренера
// (confirmed или pending_resolution)
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed || b.Status == StatusPendingResolution
}

// CanBeCancelled возвращает true, если бронирование может быть отменено
func (b *Booking) CanBeCancelled() bool {
	return b.Status.CanTransitionTo(StatusCancelled)
}

// IsDeadlineExpired возвращает true, если дедлайн блокировки истек
func (b *Booking) IsDeadlineExpired(now time.Time) bool {
	return b.Status == StatusPendingResolution &&
		b.BlockDeadline != nil &&
		!b.BlockDeadline.After(now)
}
