package reconcile_blocks

import (
	"context"

	"github.com/fitbrawl/GMS-BookingService/internal/service/reconciler"
)

type ReconcilerService interface {
	ReconcileExpiredBlocks(ctx context.Context) (*reconciler.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
