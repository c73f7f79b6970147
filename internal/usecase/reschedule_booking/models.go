package reschedule_booking

import (
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	"github.com/fitbrawl/GMS-BookingService/pkg/types"
)

// Request модель запроса на перенос заблокированного бронирования
// Тип занятия, тренер и длительность сохраняются из исходного бронирования
type Request struct {
	UserID       int64
	BookingID    int64
	NewDate      time.Time
	NewStartTime types.TimeString
}

// Response модель ответа с новым бронированием
// Исходное бронирование остается в истории со статусом rescheduled
type Response struct {
	OldBookingID int64
	Booking      *domain.Booking
}
