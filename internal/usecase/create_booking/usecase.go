package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	bookingstorage "github.com/fitbrawl/GMS-BookingService/internal/infra/storage/booking"
	shiftstorage "github.com/fitbrawl/GMS-BookingService/internal/infra/storage/shift"
	trainerstorage "github.com/fitbrawl/GMS-BookingService/internal/infra/storage/trainer"
	"github.com/fitbrawl/GMS-BookingService/pkg/interval"
	"github.com/fitbrawl/GMS-BookingService/pkg/weekrange"
)

// UseCase реализует создание бронирования
//
// Проверка доступности слота и вставка выполняются в одной сериализуемой
// транзакции: состояние, показанное пользователю при выборе слота, могло
// устареть к моменту подтверждения, поэтому все условия перепроверяются
// заново под блокировкой строк
type UseCase struct {
	bookingRepo  BookingRepository
	shiftRepo    ShiftRepository
	trainerRepo  TrainerRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	log          Logger

	slotDuration     int
	weeklyCapMinutes int
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(
	bookingRepo BookingRepository,
	shiftRepo ShiftRepository,
	trainerRepo TrainerRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	log Logger,
	slotDurationMinutes int,
	weeklyCapMinutes int,
) *UseCase {
	if slotDurationMinutes <= 0 {
		slotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if weeklyCapMinutes <= 0 {
		weeklyCapMinutes = domain.DefaultWeeklyCapMinutes
	}

	return &UseCase{
		bookingRepo:      bookingRepo,
		shiftRepo:        shiftRepo,
		trainerRepo:      trainerRepo,
		txManager:        txManager,
		timeProvider:     timeProvider,
		log:              log,
		slotDuration:     slotDurationMinutes,
		weeklyCapMinutes: weeklyCapMinutes,
	}
}

// Execute выполняет создание бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	requested, err := validateRequest(req, uc.slotDuration)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Бронирование в прошлом запрещено
	if err := uc.checkNotInPast(req, requested, now); err != nil {
		return nil, err
	}

	// 3. Проверка тренера: существует, активен, ведет нужный тип занятий
	trainer, err := uc.trainerRepo.GetByID(ctx, req.TrainerID)
	if err != nil {
		if errors.Is(err, trainerstorage.ErrTrainerNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrTrainerNotFound, req.TrainerID)
		}
		return nil, fmt.Errorf("%w: Execute - failed to get trainer: %w", ErrInternal, err)
	}

	if !trainer.IsActive {
		return nil, fmt.Errorf("%w: trainer id=%d is inactive", ErrTrainerUnavailable, req.TrainerID)
	}

	if !trainer.ServesClassType(req.ClassType) {
		return nil, fmt.Errorf("%w: trainer id=%d, class_type=%s", ErrClassTypeMismatch, req.TrainerID, req.ClassType)
	}

	var created *domain.Booking
	var usedMinutes int

	// 4. Сериализуемая транзакция: перепроверка условий и вставка
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Интервал должен лежать внутри смены и вне перерыва
		if err := uc.checkWithinShift(txCtx, req, requested); err != nil {
			return err
		}

		// 4.2. Недельный лимит пользователя
		used, err := uc.checkWeeklyCap(txCtx, req)
		if err != nil {
			return err
		}
		usedMinutes = used + req.DurationMinutes

		// 4.3. Пересечения с активными бронированиями тренера (строки блокируются)
		if err := uc.checkNoOverlap(txCtx, req, requested); err != nil {
			return err
		}

		// 4.4. Вставка; exclusion constraint БД - последний рубеж от гонки
		booking := &domain.Booking{
			UserID:          req.UserID,
			TrainerID:       req.TrainerID,
			ClassType:       req.ClassType,
			BookingDate:     truncateToDay(req.Date),
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			Status:          domain.StatusConfirmed,
			TrainerName:     trainer.Name,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingstorage.ErrSlotConflict) {
				return fmt.Errorf("%w: trainer id=%d, date=%s, start=%s",
					ErrSlotConflict, req.TrainerID, req.Date.Format(domain.DateFormat), req.StartTime)
			}
			return fmt.Errorf("%w: Execute - failed to create booking: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.log.Info("Booking created: id=%d, user=%d, trainer=%d, date=%s, start=%s, duration=%d",
		created.ID, created.UserID, created.TrainerID,
		created.BookingDate.Format(domain.DateFormat), created.StartTime, created.DurationMinutes)

	return &Response{
		Booking:           created,
		WeeklyUsedMinutes: usedMinutes,
		WeeklyCapMinutes:  uc.weeklyCapMinutes,
	}, nil
}

// checkNotInPast проверяет, что занятие не начинается в прошлом
func (uc *UseCase) checkNotInPast(req *Request, requested interval.Interval, now time.Time) error {
	reqDay := truncateToDay(req.Date)
	nowDay := truncateToDay(now)

	if reqDay.Before(nowDay) {
		return fmt.Errorf("%w: date=%s", ErrInvalidDate, req.Date.Format(domain.DateFormat))
	}

	if reqDay.Equal(nowDay) {
		nowMinute := now.Hour()*60 + now.Minute()
		if requested.Start < nowMinute {
			return fmt.Errorf("%w: start=%s is already in the past", ErrInvalidDate, req.StartTime)
		}
	}

	return nil
}

// checkWithinShift проверяет, что интервал лежит в рабочем окне тренера:
// внутри смены и не пересекается с перерывом
func (uc *UseCase) checkWithinShift(ctx context.Context, req *Request, requested interval.Interval) error {
	schedule, err := uc.shiftRepo.GetByTrainerAndWeekday(ctx, req.TrainerID, req.Date.Weekday())
	if err != nil {
		if errors.Is(err, shiftstorage.ErrShiftNotFound) {
			return fmt.Errorf("%w: trainer id=%d has no shift on %s",
				ErrTrainerUnavailable, req.TrainerID, req.Date.Weekday())
		}
		return fmt.Errorf("%w: checkWithinShift - failed to get shift schedule: %w", ErrInternal, err)
	}

	if !schedule.IsActive {
		return fmt.Errorf("%w: shift is inactive for trainer id=%d", ErrTrainerUnavailable, req.TrainerID)
	}

	shiftIv, err := schedule.ShiftInterval()
	if err != nil {
		return fmt.Errorf("%w: checkWithinShift - invalid shift window: %w", ErrInternal, err)
	}

	if !shiftIv.Contains(requested) {
		return fmt.Errorf("%w: requested [%s, +%dm) is outside shift window",
			ErrTrainerUnavailable, req.StartTime, req.DurationMinutes)
	}

	breakIv, hasBreak, err := schedule.BreakInterval()
	if err != nil {
		return fmt.Errorf("%w: checkWithinShift - invalid break window: %w", ErrInternal, err)
	}

	if hasBreak && requested.Overlaps(breakIv) {
		return fmt.Errorf("%w: requested [%s, +%dm) overlaps trainer break",
			ErrTrainerUnavailable, req.StartTime, req.DurationMinutes)
	}

	return nil
}

// checkWeeklyCap проверяет недельный лимит пользователя
// Возвращает текущую загрузку в минутах
func (uc *UseCase) checkWeeklyCap(ctx context.Context, req *Request) (int, error) {
	week := weekrange.ForDate(req.Date)

	used, err := uc.bookingRepo.SumActiveMinutes(ctx, req.UserID, week.Start, week.End)
	if err != nil {
		return 0, fmt.Errorf("%w: checkWeeklyCap - failed to sum active minutes: %w", ErrInternal, err)
	}

	if used+req.DurationMinutes > uc.weeklyCapMinutes {
		if !req.OverrideWeeklyCap {
			return 0, fmt.Errorf("%w: used=%d, requested=%d, cap=%d",
				ErrWeeklyCapExceeded, used, req.DurationMinutes, uc.weeklyCapMinutes)
		}
		uc.log.Warn("Weekly cap override: user=%d, used=%d, requested=%d, cap=%d",
			req.UserID, used, req.DurationMinutes, uc.weeklyCapMinutes)
	}

	return used, nil
}

// checkNoOverlap проверяет отсутствие пересечений с активными бронированиями
func (uc *UseCase) checkNoOverlap(ctx context.Context, req *Request, requested interval.Interval) error {
	occupied, err := uc.bookingRepo.GetActiveByTrainerAndDate(ctx, req.TrainerID, truncateToDay(req.Date))
	if err != nil {
		return fmt.Errorf("%w: checkNoOverlap - failed to get bookings: %w", ErrInternal, err)
	}

	for _, booking := range occupied {
		iv, err := booking.Interval()
		if err != nil {
			return fmt.Errorf("%w: checkNoOverlap - invalid booking interval (id=%d): %w", ErrInternal, booking.ID, err)
		}
		if requested.Overlaps(iv) {
			return fmt.Errorf("%w: overlaps booking id=%d", ErrSlotConflict, booking.ID)
		}
	}

	return nil
}

// truncateToDay отбрасывает время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
