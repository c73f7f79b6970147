package get_user_bookings

import (
	"context"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	"github.com/fitbrawl/GMS-BookingService/internal/service/bookings"
)

type BookingsService interface {
	GetUserBookings(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*bookings.BookingView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
