package reconciler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	bookingstorage "github.com/fitbrawl/GMS-BookingService/internal/infra/storage/booking"
	"github.com/fitbrawl/GMS-BookingService/internal/integrations/notifier"
)

// cancelReasonExpired причина автоотмены по истечении дедлайна
const cancelReasonExpired = "Отменено автоматически: не было действий до истечения срока"

// defaultBatchSize размер страницы реконсилера по умолчанию
const defaultBatchSize = 100

// Service реконсилер просроченных блокировок
//
// Не хранит состояния между запусками: каждый проход заново выбирает
// просроченные pending_resolution из БД, поэтому запуски идемпотентны
// и параллельный запуск двух экземпляров безопасен (guarded-переход
// в хранилище сработает ровно один раз)
type Service struct {
	bookingRepo  BookingRepository
	notifier     NotificationSender
	metrics      MetricsRecorder
	timeProvider TimeProvider
	log          Logger
	batchSize    int
}

// Result итоги одного прохода реконсилера
type Result struct {
	CancelledCount int
	SkippedCount   int
	CompletedCount int64
}

// NewService создает новый экземпляр реконсилера
// metrics может быть nil, если метрики выключены конфигурацией
func NewService(
	bookingRepo BookingRepository,
	notificationSender NotificationSender,
	metrics MetricsRecorder,
	timeProvider TimeProvider,
	log Logger,
	batchSize int,
) *Service {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &Service{
		bookingRepo:  bookingRepo,
		notifier:     notificationSender,
		metrics:      metrics,
		timeProvider: timeProvider,
		log:          log,
		batchSize:    batchSize,
	}
}

// ReconcileExpiredBlocks отменяет бронирования, по которым пользователь
// не отреагировал на блокировку до дедлайна
//
// Обрабатывает страницами по batchSize; сбой на одной строке не прерывает
// проход. Повторный запуск по уже обработанным данным ничего не меняет
func (s *Service) ReconcileExpiredBlocks(ctx context.Context) (*Result, error) {
	if s.metrics != nil {
		s.metrics.IncReconcilerRun()
	}

	now := s.timeProvider.Now()
	result := &Result{}

	// Неподдавшиеся строки остаются в выборке следующих страниц:
	// каждая считается пропущенной один раз и повторно не трогается
	skipped := make(map[int64]struct{})

	for {
		page, err := s.bookingRepo.ListExpiredPendingResolution(ctx, now, s.batchSize)
		if err != nil {
			return result, fmt.Errorf("%w: ReconcileExpiredBlocks - failed to list expired bookings: %v", ErrInternal, err)
		}

		if len(page) == 0 {
			break
		}

		cancelledInPage := 0
		for _, booking := range page {
			if _, seen := skipped[booking.ID]; seen {
				continue
			}
			if err := s.cancelExpired(ctx, booking); err != nil {
				skipped[booking.ID] = struct{}{}
				result.SkippedCount++
				continue
			}
			cancelledInPage++
			result.CancelledCount++
		}

		// Страница целиком не поддалась - выходим, иначе зациклимся
		// на одних и тех же строках
		if cancelledInPage == 0 {
			break
		}

		if len(page) < s.batchSize {
			break
		}
	}

	if s.metrics != nil && result.CancelledCount > 0 {
		s.metrics.AddReconcilerCancelled(result.CancelledCount)
	}

	if result.CancelledCount > 0 || result.SkippedCount > 0 {
		s.log.Info("Reconcile pass: cancelled=%d, skipped=%d", result.CancelledCount, result.SkippedCount)
	}

	return result, nil
}

// CompleteElapsed переводит прошедшие занятия в completed (housekeeping)
func (s *Service) CompleteElapsed(ctx context.Context) (int64, error) {
	count, err := s.bookingRepo.CompleteElapsed(ctx, s.timeProvider.Now())
	if err != nil {
		return 0, fmt.Errorf("%w: CompleteElapsed - failed to complete bookings: %v", ErrInternal, err)
	}

	if count > 0 {
		s.log.Info("Completed elapsed bookings: %d", count)
	}

	return count, nil
}

// Run запускает периодические проходы реконсилера до отмены контекста
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.Info("Reconciler started: interval=%s, batch=%d", interval, s.batchSize)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Reconciler stopped")
			return
		case <-ticker.C:
			if _, err := s.ReconcileExpiredBlocks(ctx); err != nil {
				s.log.Error("Reconcile pass failed: %v", err)
			}
			if _, err := s.CompleteElapsed(ctx); err != nil {
				s.log.Error("Complete elapsed pass failed: %v", err)
			}
		}
	}
}

// cancelExpired отменяет одно просроченное бронирование и уведомляет пользователя
func (s *Service) cancelExpired(ctx context.Context, booking *domain.Booking) error {
	if err := s.bookingRepo.Cancel(ctx, booking.ID, cancelReasonExpired); err != nil {
		// Конкурентная операция успела закрыть бронирование - это не сбой
		if errors.Is(err, bookingstorage.ErrStatusTransition) {
			s.log.Warn("Reconcile skip: booking id=%d already resolved", booking.ID)
		} else {
			s.log.Error("Reconcile failed for booking id=%d: %v", booking.ID, err)
		}
		return err
	}

	// Уведомление best-effort: сбой доставки не влияет на отмену
	notification := &notifier.Notification{
		UserID:           booking.UserID,
		NotificationType: notifier.TypeBookingAutoCancelled,
		Title:            "Занятие отменено",
		Message: fmt.Sprintf(
			"Ваше занятие %s в %s отменено автоматически: срок переноса истек.",
			booking.BookingDate.Format(domain.DateFormat), booking.StartTime),
		BookingID: booking.ID,
	}

	if err := s.notifier.Send(ctx, notification); err != nil {
		s.log.Error("Notification delivery failed: booking=%d, user=%d: %v", booking.ID, booking.UserID, err)
	}

	return nil
}
