package get_trainer_bookings

import (
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	"github.com/fitbrawl/GMS-BookingService/internal/service/bookings"
)

// BookingItem HTTP-модель бронирования в расписании тренера
type BookingItem struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	ClassType       string `json:"classType"`
	BookingDate     string `json:"bookingDate"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	ActionRequired bool    `json:"actionRequired"`
	ActionDeadline *string `json:"actionDeadline,omitempty"`
}

// TrainerBookingsResponse HTTP-модель расписания тренера за период
type TrainerBookingsResponse struct {
	TrainerID int64         `json:"trainerId"`
	From      string        `json:"from"`
	To        string        `json:"to"`
	Bookings  []BookingItem `json:"bookings"`
}

// FromViews конвертирует модели сервиса в HTTP response
func FromViews(trainerID int64, from, to time.Time, views []*bookings.BookingView) *TrainerBookingsResponse {
	items := make([]BookingItem, 0, len(views))

	for _, view := range views {
		booking := view.Booking

		item := BookingItem{
			ID:              booking.ID,
			UserID:          booking.UserID,
			ClassType:       booking.ClassType,
			BookingDate:     booking.BookingDate.Format(domain.DateFormat),
			StartTime:       booking.StartTime.String(),
			DurationMinutes: booking.DurationMinutes,
			Status:          string(booking.Status),
			ActionRequired:  view.ActionRequired,
		}

		if view.ActionDeadline != nil {
			deadline := view.ActionDeadline.Format(time.RFC3339)
			item.ActionDeadline = &deadline
		}

		items = append(items, item)
	}

	return &TrainerBookingsResponse{
		TrainerID: trainerID,
		From:      from.Format(domain.DateFormat),
		To:        to.Format(domain.DateFormat),
		Bookings:  items,
	}
}
