package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	shiftstorage "github.com/fitbrawl/GMS-BookingService/internal/infra/storage/shift"
	trainerstorage "github.com/fitbrawl/GMS-BookingService/internal/infra/storage/trainer"
)

// UseCase реализует получение доступных слотов тренера на дату
type UseCase struct {
	bookingRepo  BookingRepository
	shiftRepo    ShiftRepository
	trainerRepo  TrainerRepository
	timeProvider TimeProvider
	log          Logger
	slotDuration int
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(
	bookingRepo BookingRepository,
	shiftRepo ShiftRepository,
	trainerRepo TrainerRepository,
	timeProvider TimeProvider,
	log Logger,
	slotDurationMinutes int,
) *UseCase {
	if slotDurationMinutes <= 0 {
		slotDurationMinutes = domain.DefaultSlotDurationMinutes
	}

	return &UseCase{
		bookingRepo:  bookingRepo,
		shiftRepo:    shiftRepo,
		trainerRepo:  trainerRepo,
		timeProvider: timeProvider,
		log:          log,
		slotDuration: slotDurationMinutes,
	}
}

// Execute выполняет получение доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	resp := &Response{
		TrainerID: req.TrainerID,
		ClassType: req.ClassType,
		Date:      req.Date,
		Slots:     []domain.AvailableSlot{},
	}

	// 2. Проверка тренера: несуществующий тренер - ошибка,
	// неактивный или с другой специализацией - просто пустой список
	trainer, err := uc.trainerRepo.GetByID(ctx, req.TrainerID)
	if err != nil {
		if errors.Is(err, trainerstorage.ErrTrainerNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrTrainerNotFound, req.TrainerID)
		}
		return nil, fmt.Errorf("%w: Execute - failed to get trainer: %v", ErrInternal, err)
	}

	if !trainer.IsActive || !trainer.ServesClassType(req.ClassType) {
		return resp, nil
	}

	now := uc.timeProvider.Now()

	// 3. Дата целиком в прошлом - слотов нет
	if truncateToDay(req.Date).Before(truncateToDay(now)) {
		return resp, nil
	}

	// 4. Смена тренера на этот день недели; её отсутствие - выходной
	schedule, err := uc.shiftRepo.GetByTrainerAndWeekday(ctx, req.TrainerID, req.Date.Weekday())
	if err != nil {
		if errors.Is(err, shiftstorage.ErrShiftNotFound) {
			return resp, nil
		}
		return nil, fmt.Errorf("%w: Execute - failed to get shift schedule: %v", ErrInternal, err)
	}

	if !schedule.IsActive {
		return resp, nil
	}

	// 5. Активные бронирования, занимающие слоты в этот день
	occupied, err := uc.bookingRepo.GetActiveByTrainerAndDate(ctx, req.TrainerID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Вычисление слотов
	sameDay := truncateToDay(req.Date).Equal(truncateToDay(now))
	nowMinute := now.Hour()*60 + now.Minute()

	slots, err := buildSlots(schedule, occupied, uc.slotDuration, sameDay, nowMinute)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - failed to build slots: %v", ErrInternal, err)
	}

	resp.Slots = slots

	return resp, nil
}

// truncateToDay отбрасывает время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
