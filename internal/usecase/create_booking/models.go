package create_booking

import (
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	"github.com/fitbrawl/GMS-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          int64
	TrainerID       int64
	ClassType       string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int

	// OverrideWeeklyCap пропускает проверку недельного лимита
	// Выставляется только админским контуром, факт пропуска логируется
	OverrideWeeklyCap bool
}

// Response модель ответа с созданным бронированием и актуальной
// недельной загрузкой пользователя
type Response struct {
	Booking           *domain.Booking
	WeeklyUsedMinutes int
	WeeklyCapMinutes  int
}
