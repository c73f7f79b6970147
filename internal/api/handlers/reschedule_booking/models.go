package reschedule_booking

import (
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	rescheduleBooking "github.com/fitbrawl/GMS-BookingService/internal/usecase/reschedule_booking"
	"github.com/fitbrawl/GMS-BookingService/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	NewDate      string `json:"newDate"`      // "2026-09-08"
	NewStartTime string `json:"newStartTime"` // "14:00"
}

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	OldBookingID    int64  `json:"oldBookingId"`
	ID              int64  `json:"id"`
	TrainerID       int64  `json:"trainerId"`
	TrainerName     string `json:"trainerName"`
	ClassType       string `json:"classType"`
	BookingDate     string `json:"bookingDate"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(userID, bookingID int64) (*rescheduleBooking.Request, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	newStartTime, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		UserID:       userID,
		BookingID:    bookingID,
		NewDate:      newDate,
		NewStartTime: newStartTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	booking := resp.Booking

	return &RescheduleBookingResponse{
		OldBookingID:    resp.OldBookingID,
		ID:              booking.ID,
		TrainerID:       booking.TrainerID,
		TrainerName:     booking.TrainerName,
		ClassType:       booking.ClassType,
		BookingDate:     booking.BookingDate.Format(domain.DateFormat),
		StartTime:       booking.StartTime.String(),
		DurationMinutes: booking.DurationMinutes,
		Status:          string(booking.Status),
		CreatedAt:       booking.CreatedAt.Format(time.RFC3339),
	}
}
