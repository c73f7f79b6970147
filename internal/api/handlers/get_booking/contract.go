package get_booking

import (
	"context"

	"github.com/fitbrawl/GMS-BookingService/internal/service/bookings"
)

type BookingsService interface {
	GetByID(ctx context.Context, bookingID, userID int64, isAdmin bool) (*bookings.BookingView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
