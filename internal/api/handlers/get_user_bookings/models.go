package get_user_bookings

import (
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	"github.com/fitbrawl/GMS-BookingService/internal/service/bookings"
)

// BookingItem HTTP-модель бронирования в списке
type BookingItem struct {
	ID              int64  `json:"id"`
	TrainerID       int64  `json:"trainerId"`
	TrainerName     string `json:"trainerName"`
	ClassType       string `json:"classType"`
	BookingDate     string `json:"bookingDate"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	ActionRequired bool    `json:"actionRequired"`
	ActionDeadline *string `json:"actionDeadline,omitempty"`
	BlockReason    *string `json:"blockReason,omitempty"`

	CreatedAt string `json:"createdAt"`
}

// UserBookingsResponse HTTP-модель списка бронирований пользователя
type UserBookingsResponse struct {
	UserID   int64         `json:"userId"`
	Bookings []BookingItem `json:"bookings"`
}

// FromViews конвертирует модели сервиса в HTTP response
func FromViews(userID int64, views []*bookings.BookingView) *UserBookingsResponse {
	items := make([]BookingItem, 0, len(views))

	for _, view := range views {
		booking := view.Booking

		item := BookingItem{
			ID:              booking.ID,
			TrainerID:       booking.TrainerID,
			TrainerName:     booking.TrainerName,
			ClassType:       booking.ClassType,
			BookingDate:     booking.BookingDate.Format(domain.DateFormat),
			StartTime:       booking.StartTime.String(),
			DurationMinutes: booking.DurationMinutes,
			Status:          string(booking.Status),
			ActionRequired:  view.ActionRequired,
			BlockReason:     booking.BlockReason,
			CreatedAt:       booking.CreatedAt.Format(time.RFC3339),
		}

		if view.ActionDeadline != nil {
			deadline := view.ActionDeadline.Format(time.RFC3339)
			item.ActionDeadline = &deadline
		}

		items = append(items, item)
	}

	return &UserBookingsResponse{
		UserID:   userID,
		Bookings: items,
	}
}
