package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	bookingstorage "github.com/fitbrawl/GMS-BookingService/internal/infra/storage/booking"
)

// cancelReasonUser причина по умолчанию при отмене без комментария
const cancelReasonUser = "Отменено пользователем"

// Service сервис чтения и отмены бронирований
type Service struct {
	bookingRepo BookingRepository
	log         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, log Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		log:         log,
	}
}

// GetByID возвращает бронирование, доступное пользователю
// Чужие бронирования отдаются только админскому контуру
func (s *Service) GetByID(ctx context.Context, bookingID, userID int64, isAdmin bool) (*BookingView, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: booking_id must be positive, got %d", ErrInvalidInput, bookingID)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingstorage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrBookingNotFound, bookingID)
		}
		return nil, fmt.Errorf("%w: GetByID - failed to get booking: %v", ErrInternal, err)
	}

	if booking.UserID != userID && !isAdmin {
		return nil, fmt.Errorf("%w: booking id=%d", ErrAccessDenied, bookingID)
	}

	return s.toView(booking), nil
}

// GetUserBookings возвращает бронирования пользователя
// Бронирования в pending_resolution помечаются как требующие реакции
func (s *Service) GetUserBookings(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*BookingView, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user_id must be positive, got %d", ErrInvalidInput, userID)
	}

	if status != nil && !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, string(*status))
	}

	list, err := s.bookingRepo.GetByUserID(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUserBookings - failed to get bookings: %v", ErrInternal, err)
	}

	views := make([]*BookingView, 0, len(list))
	for _, booking := range list {
		views = append(views, s.toView(booking))
	}

	return views, nil
}

// GetTrainerBookings возвращает бронирования тренера за период (админский обзор)
func (s *Service) GetTrainerBookings(ctx context.Context, req *TrainerPeriodRequest) ([]*BookingView, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.TrainerID <= 0 {
		return nil, fmt.Errorf("%w: trainer_id must be positive, got %d", ErrInvalidInput, req.TrainerID)
	}
	if req.From.IsZero() || req.To.IsZero() {
		return nil, fmt.Errorf("%w: period bounds are required", ErrInvalidInput)
	}
	if req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: period end is before start", ErrInvalidInput)
	}

	list, err := s.bookingRepo.GetByTrainerAndPeriod(ctx, req.TrainerID, req.From, req.To)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTrainerBookings - failed to get bookings: %v", ErrInternal, err)
	}

	views := make([]*BookingView, 0, len(list))
	for _, booking := range list {
		views = append(views, s.toView(booking))
	}

	return views, nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только свое; guarded-переход в хранилище
// не дает отменить бронирование в терминальном статусе
func (s *Service) Cancel(ctx context.Context, req *CancelRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking_id must be positive, got %d", ErrInvalidInput, req.BookingID)
	}
	if len(req.Reason) > domain.MaxCancelReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxCancelReasonLength)
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingstorage.ErrBookingNotFound) {
			return fmt.Errorf("%w: id=%d", ErrBookingNotFound, req.BookingID)
		}
		return fmt.Errorf("%w: Cancel - failed to get booking: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID && !req.IsAdmin {
		return fmt.Errorf("%w: booking id=%d", ErrAccessDenied, req.BookingID)
	}

	if !booking.CanBeCancelled() {
		return fmt.Errorf("%w: booking id=%d has status %s", ErrCannotCancel, req.BookingID, booking.Status)
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = cancelReasonUser
	}

	if err := s.bookingRepo.Cancel(ctx, req.BookingID, reason); err != nil {
		if errors.Is(err, bookingstorage.ErrStatusTransition) {
			return fmt.Errorf("%w: booking id=%d was resolved concurrently", ErrCannotCancel, req.BookingID)
		}
		return fmt.Errorf("%w: Cancel - failed to cancel booking: %v", ErrInternal, err)
	}

	s.log.Info("Booking cancelled: id=%d, by user=%d, admin=%t", req.BookingID, req.UserID, req.IsAdmin)

	return nil
}

// toView строит модель выдачи с флагом требуемой реакции
func (s *Service) toView(booking *domain.Booking) *BookingView {
	view := &BookingView{Booking: booking}

	if booking.Status == domain.StatusPendingResolution {
		view.ActionRequired = true
		view.ActionDeadline = booking.BlockDeadline
	}

	return view
}
