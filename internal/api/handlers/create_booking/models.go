package create_booking

import (
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	createBooking "github.com/fitbrawl/GMS-BookingService/internal/usecase/create_booking"
	"github.com/fitbrawl/GMS-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TrainerID       int64  `json:"trainerId"`
	ClassType       string `json:"classType"`
	BookingDate     string `json:"bookingDate"` // "2026-09-07"
	StartTime       string `json:"startTime"`   // "10:00"
	DurationMinutes int    `json:"durationMinutes"`

	// OverrideWeeklyCap учитывается только для администраторов
	OverrideWeeklyCap bool `json:"overrideWeeklyCap,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                int64  `json:"id"`
	UserID            int64  `json:"userId"`
	TrainerID         int64  `json:"trainerId"`
	TrainerName       string `json:"trainerName"`
	ClassType         string `json:"classType"`
	BookingDate       string `json:"bookingDate"`
	StartTime         string `json:"startTime"`
	DurationMinutes   int    `json:"durationMinutes"`
	Status            string `json:"status"`
	WeeklyUsedMinutes int    `json:"weeklyUsedMinutes"`
	WeeklyCapMinutes  int    `json:"weeklyCapMinutes"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64, isAdmin bool) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:            userID,
		TrainerID:         r.TrainerID,
		ClassType:         r.ClassType,
		Date:              bookingDate,
		StartTime:         startTime,
		DurationMinutes:   r.DurationMinutes,
		OverrideWeeklyCap: r.OverrideWeeklyCap && isAdmin,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	booking := resp.Booking

	return &BookingResponse{
		ID:                booking.ID,
		UserID:            booking.UserID,
		TrainerID:         booking.TrainerID,
		TrainerName:       booking.TrainerName,
		ClassType:         booking.ClassType,
		BookingDate:       booking.BookingDate.Format(domain.DateFormat),
		StartTime:         booking.StartTime.String(),
		DurationMinutes:   booking.DurationMinutes,
		Status:            string(booking.Status),
		WeeklyUsedMinutes: resp.WeeklyUsedMinutes,
		WeeklyCapMinutes:  resp.WeeklyCapMinutes,
		CreatedAt:         booking.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         booking.UpdatedAt.Format(time.RFC3339),
	}
}
