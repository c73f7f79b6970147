package apply_block

import (
	"context"

	blockTrainer "github.com/fitbrawl/GMS-BookingService/internal/usecase/block_trainer"
)

type BlockTrainerUseCase interface {
	Apply(ctx context.Context, req *blockTrainer.Request) (*blockTrainer.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
