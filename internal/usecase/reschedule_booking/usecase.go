package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	bookingstorage "github.com/fitbrawl/GMS-BookingService/internal/infra/storage/booking"
	shiftstorage "github.com/fitbrawl/GMS-BookingService/internal/infra/storage/shift"
	"github.com/fitbrawl/GMS-BookingService/pkg/interval"
)

// UseCase реализует перенос бронирования, затронутого блокировкой тренера
//
// Исходное бронирование не редактируется: оно закрывается статусом
// rescheduled, а на новый слот создается новое confirmed-бронирование.
// Обе записи меняются в одной сериализуемой транзакции
type UseCase struct {
	bookingRepo  BookingRepository
	shiftRepo    ShiftRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	log          Logger
	slotDuration int
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(
	bookingRepo BookingRepository,
	shiftRepo ShiftRepository,
	txManager TransactionManager,
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
		txManager:    txManager,
		timeProvider: timeProvider,
		log:          log,
		slotDuration: slotDurationMinutes,
	}
}

// Execute выполняет перенос бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Исходное бронирование: принадлежность, статус, дедлайн
	original, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingstorage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrBookingNotFound, req.BookingID)
		}
		return nil, fmt.Errorf("%w: Execute - failed to get booking: %w", ErrInternal, err)
	}

	if original.UserID != req.UserID {
		return nil, fmt.Errorf("%w: booking id=%d", ErrAccessDenied, req.BookingID)
	}

	if original.Status != domain.StatusPendingResolution {
		return nil, fmt.Errorf("%w: booking id=%d has status %s", ErrNotPendingResolution, req.BookingID, original.Status)
	}

	if original.IsDeadlineExpired(now) {
		return nil, fmt.Errorf("%w: booking id=%d", ErrDeadlineExpired, req.BookingID)
	}

	// 3. Новый интервал: та же длительность, выравнивание по сетке, не в прошлом
	requested, err := uc.buildRequestedInterval(req, original, now)
	if err != nil {
		return nil, err
	}

	var created *domain.Booking

	// 4. Сериализуемая транзакция: проверка нового слота, вставка, закрытие старого
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Новый интервал внутри смены и вне перерыва
		if err := uc.checkWithinShift(txCtx, original.TrainerID, req.NewDate, requested); err != nil {
			return err
		}

		// 4.2. Пересечения с активными бронированиями (исходное в pending_resolution
		// тоже активно, но переносимое занятие не конфликтует само с собой)
		occupied, err := uc.bookingRepo.GetActiveByTrainerAndDate(txCtx, original.TrainerID, truncateToDay(req.NewDate))
		if err != nil {
			return fmt.Errorf("%w: Execute - failed to get bookings: %w", ErrInternal, err)
		}

		for _, booking := range occupied {
			if booking.ID == original.ID {
				continue
			}
			iv, err := booking.Interval()
			if err != nil {
				return fmt.Errorf("%w: Execute - invalid booking interval (id=%d): %w", ErrInternal, booking.ID, err)
			}
			if requested.Overlaps(iv) {
				return fmt.Errorf("%w: overlaps booking id=%d", ErrSlotConflict, booking.ID)
			}
		}

		// 4.3. Закрытие исходного бронирования
		if err := uc.bookingRepo.MarkRescheduled(txCtx, original.ID); err != nil {
			if errors.Is(err, bookingstorage.ErrStatusTransition) {
				return fmt.Errorf("%w: booking id=%d was resolved concurrently", ErrNotPendingResolution, original.ID)
			}
			return fmt.Errorf("%w: Execute - failed to mark rescheduled: %w", ErrInternal, err)
		}

		// 4.4. Новое бронирование на выбранный слот
		booking := &domain.Booking{
			UserID:          original.UserID,
			TrainerID:       original.TrainerID,
			ClassType:       original.ClassType,
			BookingDate:     truncateToDay(req.NewDate),
			StartTime:       req.NewStartTime,
			DurationMinutes: original.DurationMinutes,
			Status:          domain.StatusConfirmed,
			TrainerName:     original.TrainerName,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingstorage.ErrSlotConflict) {
				return fmt.Errorf("%w: trainer id=%d, date=%s, start=%s",
					ErrSlotConflict, original.TrainerID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)
			}
			return fmt.Errorf("%w: Execute - failed to create booking: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.log.Info("Booking rescheduled: old=%d, new=%d, user=%d, trainer=%d, date=%s, start=%s",
		original.ID, created.ID, created.UserID, created.TrainerID,
		created.BookingDate.Format(domain.DateFormat), created.StartTime)

	return &Response{
		OldBookingID: original.ID,
		Booking:      created,
	}, nil
}

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user_id must be positive, got %d", ErrInvalidInput, req.UserID)
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking_id must be positive, got %d", ErrInvalidInput, req.BookingID)
	}
	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: new_date is required", ErrInvalidInput)
	}
	if err := req.NewStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid new_start_time %q", ErrInvalidInterval, string(req.NewStartTime))
	}
	return nil
}

// buildRequestedInterval строит интервал нового слота и проверяет,
// что он выровнен по сетке и не лежит в прошлом
func (uc *UseCase) buildRequestedInterval(req *Request, original *domain.Booking, now time.Time) (interval.Interval, error) {
	start, err := req.NewStartTime.Minutes()
	if err != nil {
		return interval.Interval{}, fmt.Errorf("%w: invalid new_start_time %q", ErrInvalidInterval, string(req.NewStartTime))
	}

	if start%uc.slotDuration != 0 {
		return interval.Interval{}, fmt.Errorf("%w: start_time must be aligned to %d-minute grid",
			ErrInvalidInterval, uc.slotDuration)
	}

	// Занятие должно закончиться строго до полуночи: "24:00" не существует
	// как время окончания
	end := start + original.DurationMinutes
	if end >= interval.MinutesPerDay {
		return interval.Interval{}, fmt.Errorf("%w: booking must end before midnight", ErrInvalidInterval)
	}

	iv, err := interval.New(start, end)
	if err != nil {
		return interval.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	reqDay := truncateToDay(req.NewDate)
	nowDay := truncateToDay(now)
	if reqDay.Before(nowDay) {
		return interval.Interval{}, fmt.Errorf("%w: new_date=%s is in the past", ErrInvalidInterval, req.NewDate.Format(domain.DateFormat))
	}
	if reqDay.Equal(nowDay) && start < now.Hour()*60+now.Minute() {
		return interval.Interval{}, fmt.Errorf("%w: new start=%s is already in the past", ErrInvalidInterval, req.NewStartTime)
	}

	return iv, nil
}

// checkWithinShift проверяет, что новый интервал лежит в рабочем окне тренера
func (uc *UseCase) checkWithinShift(ctx context.Context, trainerID int64, date time.Time, requested interval.Interval) error {
	schedule, err := uc.shiftRepo.GetByTrainerAndWeekday(ctx, trainerID, date.Weekday())
	if err != nil {
		if errors.Is(err, shiftstorage.ErrShiftNotFound) {
			return fmt.Errorf("%w: trainer id=%d has no shift on %s", ErrTrainerUnavailable, trainerID, date.Weekday())
		}
		return fmt.Errorf("%w: checkWithinShift - failed to get shift schedule: %w", ErrInternal, err)
	}

	if !schedule.IsActive {
		return fmt.Errorf("%w: shift is inactive for trainer id=%d", ErrTrainerUnavailable, trainerID)
	}

	shiftIv, err := schedule.ShiftInterval()
	if err != nil {
		return fmt.Errorf("%w: checkWithinShift - invalid shift window: %w", ErrInternal, err)
	}

	if !shiftIv.Contains(requested) {
		return fmt.Errorf("%w: requested interval is outside shift window", ErrTrainerUnavailable)
	}

	breakIv, hasBreak, err := schedule.BreakInterval()
	if err != nil {
		return fmt.Errorf("%w: checkWithinShift - invalid break window: %w", ErrInternal, err)
	}

	if hasBreak && requested.Overlaps(breakIv) {
		return fmt.Errorf("%w: requested interval overlaps trainer break", ErrTrainerUnavailable)
	}

	return nil
}

// truncateToDay отбрасывает время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
