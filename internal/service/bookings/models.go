package bookings

import (
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
)

// BookingView бронирование с вычисленными атрибутами для выдачи наружу
type BookingView struct {
	Booking *domain.Booking

	// ActionRequired выставляется для pending_resolution: пользователь
	// должен перенести или отменить занятие до ActionDeadline
	ActionRequired bool
	ActionDeadline *time.Time
}

// CancelRequest запрос на отмену бронирования
type CancelRequest struct {
	BookingID int64
	UserID    int64
	Reason    string

	// IsAdmin разрешает отмену чужого бронирования (админский контур)
	IsAdmin bool
}

// TrainerPeriodRequest запрос бронирований тренера за период (админский обзор)
type TrainerPeriodRequest struct {
	TrainerID int64
	From      time.Time
	To        time.Time
}
