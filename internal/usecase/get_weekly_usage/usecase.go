package get_weekly_usage

import (
	"context"
	"fmt"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	"github.com/fitbrawl/GMS-BookingService/pkg/weekrange"
)

// UseCase реализует подсчет недельной загрузки пользователя
type UseCase struct {
	bookingRepo BookingRepository
	log         Logger
	capMinutes  int
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(bookingRepo BookingRepository, log Logger, capMinutes int) *UseCase {
	if capMinutes <= 0 {
		capMinutes = domain.DefaultWeeklyCapMinutes
	}

	return &UseCase{
		bookingRepo: bookingRepo,
		log:         log,
		capMinutes:  capMinutes,
	}
}

// Execute выполняет подсчет недельной загрузки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: user_id must be positive, got %d", ErrInvalidInput, req.UserID)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Границы ISO-недели, содержащей дату
	week := weekrange.ForDate(req.Date)

	// 3. Сумма минут активных бронирований за неделю
	used, err := uc.bookingRepo.SumActiveMinutes(ctx, req.UserID, week.Start, week.End)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - failed to sum active minutes: %v", ErrInternal, err)
	}

	remaining := uc.capMinutes - used
	if remaining < 0 {
		remaining = 0
	}

	return &Response{
		UserID:           req.UserID,
		WeekStart:        week.Start,
		WeekEnd:          week.End,
		UsedMinutes:      used,
		CapMinutes:       uc.capMinutes,
		RemainingMinutes: remaining,
	}, nil
}
