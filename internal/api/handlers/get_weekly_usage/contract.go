package get_weekly_usage

import (
	"context"

	getWeeklyUsage "github.com/fitbrawl/GMS-BookingService/internal/usecase/get_weekly_usage"
)

type GetWeeklyUsageUseCase interface {
	Execute(ctx context.Context, req *getWeeklyUsage.Request) (*getWeeklyUsage.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
