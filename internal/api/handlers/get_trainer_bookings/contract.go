package get_trainer_bookings

import (
	"context"

	"github.com/fitbrawl/GMS-BookingService/internal/service/bookings"
)

type BookingsService interface {
	GetTrainerBookings(ctx context.Context, req *bookings.TrainerPeriodRequest) ([]*bookings.BookingView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
