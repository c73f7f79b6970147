package get_booking

import (
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	"github.com/fitbrawl/GMS-BookingService/internal/service/bookings"
)

// BookingResponse HTTP-модель бронирования
type BookingResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
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

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromView конвертирует модель сервиса в HTTP response
func FromView(view *bookings.BookingView) *BookingResponse {
	booking := view.Booking

	resp := &BookingResponse{
		ID:                 booking.ID,
		UserID:             booking.UserID,
		TrainerID:          booking.TrainerID,
		TrainerName:        booking.TrainerName,
		ClassType:          booking.ClassType,
		BookingDate:        booking.BookingDate.Format(domain.DateFormat),
		StartTime:          booking.StartTime.String(),
		DurationMinutes:    booking.DurationMinutes,
		Status:             string(booking.Status),
		ActionRequired:     view.ActionRequired,
		BlockReason:        booking.BlockReason,
		CancellationReason: booking.CancellationReason,
		CreatedAt:          booking.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          booking.UpdatedAt.Format(time.RFC3339),
	}

	if view.ActionDeadline != nil {
		deadline := view.ActionDeadline.Format(time.RFC3339)
		resp.ActionDeadline = &deadline
	}

	if booking.CancelledAt != nil {
		cancelledAt := booking.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}
