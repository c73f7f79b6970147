package cancel_booking

import (
	"context"

	"github.com/fitbrawl/GMS-BookingService/internal/service/bookings"
)

type BookingsService interface {
	Cancel(ctx context.Context, req *bookings.CancelRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
