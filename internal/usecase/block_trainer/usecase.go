package block_trainer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	trainerstorage "github.com/fitbrawl/GMS-BookingService/internal/infra/storage/trainer"
	"github.com/fitbrawl/GMS-BookingService/internal/integrations/notifier"
)

// UseCase реализует блокировку окна тренера
//
// Preview и Apply используют один и тот же поиск пересечений, поэтому
// администратор при подтверждении затрагивает ровно те бронирования,
// которые видел в предпросмотре (с точностью до гонок с новыми бронированиями)
type UseCase struct {
	bookingRepo  BookingRepository
	trainerRepo  TrainerRepository
	notifier     NotificationSender
	timeProvider TimeProvider
	log          Logger
	gracePeriod  time.Duration
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(
	bookingRepo BookingRepository,
	trainerRepo TrainerRepository,
	notificationSender NotificationSender,
	timeProvider TimeProvider,
	log Logger,
	gracePeriodHours int,
) *UseCase {
	if gracePeriodHours <= 0 {
		gracePeriodHours = domain.DefaultBlockGracePeriodHours
	}

	return &UseCase{
		bookingRepo:  bookingRepo,
		trainerRepo:  trainerRepo,
		notifier:     notificationSender,
		timeProvider: timeProvider,
		log:          log,
		gracePeriod:  time.Duration(gracePeriodHours) * time.Hour,
	}
}

// Preview возвращает бронирования, которые затронет блокировка,
// не изменяя их состояния
func (uc *UseCase) Preview(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	window, err := uc.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	// 2. Поиск пересекающихся подтвержденных бронирований
	affected, err := uc.findAffected(ctx, req, window)
	if err != nil {
		return nil, err
	}

	return &Response{
		TrainerID:        req.TrainerID,
		Date:             req.Date,
		AffectedBookings: affected,
		Applied:          false,
	}, nil
}

// Apply применяет блокировку: затронутые бронирования переводятся
// в pending_resolution с дедлайном реакции, пользователи уведомляются
//
// Переходы выполняются по одному, без общей транзакции: частично
// примененная блокировка безопасна (каждое бронирование либо уже
// переведено, либо осталось confirmed), а повторный Apply доберет остаток
func (uc *UseCase) Apply(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	window, err := uc.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()
	deadline := now.Add(uc.gracePeriod)

	// 2. Поиск пересекающихся подтвержденных бронирований
	bookings, err := uc.bookingRepo.GetOverlappingConfirmed(ctx, req.TrainerID, truncateToDay(req.Date), window.start, window.end)
	if err != nil {
		return nil, fmt.Errorf("%w: Apply - failed to get overlapping bookings: %v", ErrInternal, err)
	}

	// 3. Перевод каждого бронирования в pending_resolution
	affected := make([]AffectedBooking, 0, len(bookings))
	for _, booking := range bookings {
		if err := uc.bookingRepo.MarkPendingResolution(ctx, booking.ID, deadline, req.Reason); err != nil {
			// Статус успел измениться конкурентной операцией - пропускаем
			uc.log.Warn("Block skip: booking id=%d transition failed: %v", booking.ID, err)
			continue
		}

		endTime, err := booking.EndTime()
		if err != nil {
			return nil, fmt.Errorf("%w: Apply - invalid booking interval (id=%d): %v", ErrInternal, booking.ID, err)
		}

		affected = append(affected, AffectedBooking{
			BookingID:       booking.ID,
			UserID:          booking.UserID,
			StartTime:       booking.StartTime,
			EndTime:         endTime,
			DurationMinutes: booking.DurationMinutes,
		})

		// 4. Уведомление best-effort: сбой доставки логируется
		// и не откатывает переход статуса
		uc.notifyBlocked(ctx, booking, req.Reason, deadline)
	}

	uc.log.Info("Block applied: trainer=%d, date=%s, window=[%s, %s), affected=%d, deadline=%s",
		req.TrainerID, req.Date.Format(domain.DateFormat), req.BlockStart, req.BlockEnd,
		len(affected), deadline.Format(time.RFC3339))

	return &Response{
		TrainerID:        req.TrainerID,
		Date:             req.Date,
		AffectedBookings: affected,
		Applied:          true,
		Deadline:         deadline,
	}, nil
}

// blockMinutes окно блокировки в минутах с начала суток
type blockMinutes struct {
	start int
	end   int
}

// validate проверяет входные данные и существование тренера,
// возвращает окно блокировки в минутах
func (uc *UseCase) validate(ctx context.Context, req *Request) (blockMinutes, error) {
	if req == nil {
		return blockMinutes{}, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.TrainerID <= 0 {
		return blockMinutes{}, fmt.Errorf("%w: trainer_id must be positive, got %d", ErrInvalidInput, req.TrainerID)
	}

	if req.Date.IsZero() {
		return blockMinutes{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxBlockReasonLength {
		return blockMinutes{}, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxBlockReasonLength)
	}

	window := domain.BlockWindow{
		TrainerID:  req.TrainerID,
		Date:       req.Date,
		BlockStart: req.BlockStart,
		BlockEnd:   req.BlockEnd,
		Reason:     req.Reason,
		BlockedBy:  req.BlockedBy,
	}

	iv, err := window.Interval()
	if err != nil {
		return blockMinutes{}, fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval, req.BlockStart, req.BlockEnd)
	}

	if _, err := uc.trainerRepo.GetByID(ctx, req.TrainerID); err != nil {
		if errors.Is(err, trainerstorage.ErrTrainerNotFound) {
			return blockMinutes{}, fmt.Errorf("%w: id=%d", ErrTrainerNotFound, req.TrainerID)
		}
		return blockMinutes{}, fmt.Errorf("%w: validate - failed to get trainer: %v", ErrInternal, err)
	}

	return blockMinutes{start: iv.Start, end: iv.End}, nil
}

// findAffected возвращает затронутые бронирования в виде моделей ответа
func (uc *UseCase) findAffected(ctx context.Context, req *Request, window blockMinutes) ([]AffectedBooking, error) {
	bookings, err := uc.bookingRepo.GetOverlappingConfirmed(ctx, req.TrainerID, truncateToDay(req.Date), window.start, window.end)
	if err != nil {
		return nil, fmt.Errorf("%w: findAffected - failed to get overlapping bookings: %v", ErrInternal, err)
	}

	affected := make([]AffectedBooking, 0, len(bookings))
	for _, booking := range bookings {
		endTime, err := booking.EndTime()
		if err != nil {
			return nil, fmt.Errorf("%w: findAffected - invalid booking interval (id=%d): %v", ErrInternal, booking.ID, err)
		}

		affected = append(affected, AffectedBooking{
			BookingID:       booking.ID,
			UserID:          booking.UserID,
			StartTime:       booking.StartTime,
			EndTime:         endTime,
			DurationMinutes: booking.DurationMinutes,
		})
	}

	return affected, nil
}

// notifyBlocked отправляет пользователю уведомление о блокировке занятия
func (uc *UseCase) notifyBlocked(ctx context.Context, booking *domain.Booking, reason *string, deadline time.Time) {
	message := fmt.Sprintf(
		"Ваше занятие %s в %s недоступно из-за изменения расписания тренера. Перенесите или отмените его до %s.",
		booking.BookingDate.Format(domain.DateFormat), booking.StartTime, deadline.Format("02.01.2006 15:04"))

	if reason != nil && strings.TrimSpace(*reason) != "" {
		message = fmt.Sprintf("%s Причина: %s", message, *reason)
	}

	notification := &notifier.Notification{
		UserID:           booking.UserID,
		NotificationType: notifier.TypeBookingBlocked,
		Title:            "Занятие требует вашего внимания",
		Message:          message,
		BookingID:        booking.ID,
		Deadline:         &deadline,
	}

	if err := uc.notifier.Send(ctx, notification); err != nil {
		uc.log.Error("Notification delivery failed: booking=%d, user=%d: %v", booking.ID, booking.UserID, err)
	}
}

// truncateToDay отбрасывает время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
