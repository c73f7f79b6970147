package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	bookingstorage "github.com/fitbrawl/GMS-BookingService/internal/infra/storage/booking"
)

type mockBookingRepo struct {
	getByIDFn     func(ctx context.Context, id int64) (*domain.Booking, error)
	getByUserFn   func(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	getByPeriodFn func(ctx context.Context, trainerID int64, from, to time.Time) ([]*domain.Booking, error)
	cancelFn      func(ctx context.Context, id int64, reason string) error
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockBookingRepo) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return m.getByUserFn(ctx, userID, status)
}

func (m *mockBookingRepo) GetByTrainerAndPeriod(ctx context.Context, trainerID int64, from, to time.Time) ([]*domain.Booking, error) {
	return m.getByPeriodFn(ctx, trainerID, from, to)
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id int64, reason string) error {
	return m.cancelFn(ctx, id, reason)
}

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:              15,
		UserID:          42,
		TrainerID:       1,
		BookingDate:     testDate,
		StartTime:       "09:00",
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}
}

func newTestService(repo *mockBookingRepo) *Service {
	return NewService(repo, &nopLogger{})
}

func TestGetByID_Owner(t *testing.T) {
	repo := &mockBookingRepo{getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
		return confirmedBooking(), nil
	}}
	svc := newTestService(repo)

	view, err := svc.GetByID(context.Background(), 15, 42, false)
	require.NoError(t, err)
	assert.Equal(t, int64(15), view.Booking.ID)
	assert.False(t, view.ActionRequired)
	assert.Nil(t, view.ActionDeadline)
}

func TestGetByID_AdminSeesForeign(t *testing.T) {
	repo := &mockBookingRepo{getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
		return confirmedBooking(), nil
	}}
	svc := newTestService(repo)

	view, err := svc.GetByID(context.Background(), 15, 99, true)
	require.NoError(t, err)
	assert.Equal(t, int64(15), view.Booking.ID)
}

func TestGetByID_ForeignDenied(t *testing.T) {
	repo := &mockBookingRepo{getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
		return confirmedBooking(), nil
	}}
	svc := newTestService(repo)

	_, err := svc.GetByID(context.Background(), 15, 99, false)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockBookingRepo{getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
		return nil, bookingstorage.ErrBookingNotFound
	}}
	svc := newTestService(repo)

	_, err := svc.GetByID(context.Background(), 15, 42, false)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_PendingResolutionView(t *testing.T) {
	deadline := time.Date(2026, 9, 8, 12, 0, 0, 0, time.UTC)
	repo := &mockBookingRepo{getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
		booking := confirmedBooking()
		booking.Status = domain.StatusPendingResolution
		booking.BlockDeadline = &deadline
		return booking, nil
	}}
	svc := newTestService(repo)

	view, err := svc.GetByID(context.Background(), 15, 42, false)
	require.NoError(t, err)
	assert.True(t, view.ActionRequired)
	require.NotNil(t, view.ActionDeadline)
	assert.Equal(t, deadline, *view.ActionDeadline)
}

func TestGetUserBookings(t *testing.T) {
	deadline := time.Date(2026, 9, 8, 12, 0, 0, 0, time.UTC)
	pending := confirmedBooking()
	pending.ID = 16
	pending.Status = domain.StatusPendingResolution
	pending.BlockDeadline = &deadline

	var gotStatus *domain.BookingStatus
	repo := &mockBookingRepo{getByUserFn: func(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
		gotStatus = status
		return []*domain.Booking{confirmedBooking(), pending}, nil
	}}
	svc := newTestService(repo)

	views, err := svc.GetUserBookings(context.Background(), 42, nil)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Nil(t, gotStatus)
	assert.False(t, views[0].ActionRequired)
	assert.True(t, views[1].ActionRequired)
	require.NotNil(t, views[1].ActionDeadline)
	assert.Equal(t, deadline, *views[1].ActionDeadline)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newTestService(repo)

	bad := domain.BookingStatus("unknown")
	_, err := svc.GetUserBookings(context.Background(), 42, &bad)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetTrainerBookings_Validation(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newTestService(repo)

	from := testDate
	to := testDate.AddDate(0, 0, 7)

	tests := []struct {
		name string
		req  *TrainerPeriodRequest
	}{
		{name: "nil request", req: nil},
		{name: "zero trainer id", req: &TrainerPeriodRequest{From: from, To: to}},
		{name: "missing bounds", req: &TrainerPeriodRequest{TrainerID: 1}},
		{name: "end before start", req: &TrainerPeriodRequest{TrainerID: 1, From: to, To: from}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetTrainerBookings(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetTrainerBookings(t *testing.T) {
	repo := &mockBookingRepo{getByPeriodFn: func(ctx context.Context, trainerID int64, from, to time.Time) ([]*domain.Booking, error) {
		assert.Equal(t, int64(1), trainerID)
		return []*domain.Booking{confirmedBooking()}, nil
	}}
	svc := newTestService(repo)

	views, err := svc.GetTrainerBookings(context.Background(), &TrainerPeriodRequest{
		TrainerID: 1,
		From:      testDate,
		To:        testDate.AddDate(0, 0, 7),
	})
	require.NoError(t, err)
	assert.Len(t, views, 1)
}

func TestCancel_OwnerWithDefaultReason(t *testing.T) {
	var gotReason string
	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return confirmedBooking(), nil
		},
		cancelFn: func(ctx context.Context, id int64, reason string) error {
			gotReason = reason
			return nil
		},
	}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), &CancelRequest{BookingID: 15, UserID: 42})
	require.NoError(t, err)
	assert.Equal(t, cancelReasonUser, gotReason)
}

func TestCancel_CustomReason(t *testing.T) {
	var gotReason string
	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return confirmedBooking(), nil
		},
		cancelFn: func(ctx context.Context, id int64, reason string) error {
			gotReason = reason
			return nil
		},
	}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), &CancelRequest{BookingID: 15, UserID: 42, Reason: "  уезжаю в отпуск  "})
	require.NoError(t, err)
	assert.Equal(t, "уезжаю в отпуск", gotReason)
}

func TestCancel_ForeignDenied(t *testing.T) {
	repo := &mockBookingRepo{getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
		return confirmedBooking(), nil
	}}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), &CancelRequest{BookingID: 15, UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_AdminCancelsForeign(t *testing.T) {
	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return confirmedBooking(), nil
		},
		cancelFn: func(ctx context.Context, id int64, reason string) error {
			return nil
		},
	}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), &CancelRequest{BookingID: 15, UserID: 99, IsAdmin: true})
	assert.NoError(t, err)
}

func TestCancel_TerminalStatus(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCompleted, domain.StatusCancelled, domain.StatusRescheduled} {
		t.Run(string(status), func(t *testing.T) {
			repo := &mockBookingRepo{getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
				booking := confirmedBooking()
				booking.Status = status
				return booking, nil
			}}
			svc := newTestService(repo)

			err := svc.Cancel(context.Background(), &CancelRequest{BookingID: 15, UserID: 42})
			assert.ErrorIs(t, err, ErrCannotCancel)
		})
	}
}

func TestCancel_ConcurrentResolution(t *testing.T) {
	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return confirmedBooking(), nil
		},
		cancelFn: func(ctx context.Context, id int64, reason string) error {
			return bookingstorage.ErrStatusTransition
		},
	}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), &CancelRequest{BookingID: 15, UserID: 42})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), &CancelRequest{
		BookingID: 15,
		UserID:    42,
		Reason:    strings.Repeat("a", domain.MaxCancelReasonLength+1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
