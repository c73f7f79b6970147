package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	bookingstorage "github.com/fitbrawl/GMS-BookingService/internal/infra/storage/booking"
	shiftstorage "github.com/fitbrawl/GMS-BookingService/internal/infra/storage/shift"
	"github.com/fitbrawl/GMS-BookingService/pkg/ptr"
	"github.com/fitbrawl/GMS-BookingService/pkg/types"
)

type mockBookingRepo struct {
	createFn    func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	getActiveFn func(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error)
	sumFn       func(ctx context.Context, userID int64, from, to time.Time) (int, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return m.createFn(ctx, booking)
}

func (m *mockBookingRepo) GetActiveByTrainerAndDate(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error) {
	return m.getActiveFn(ctx, trainerID, date)
}

func (m *mockBookingRepo) SumActiveMinutes(ctx context.Context, userID int64, from, to time.Time) (int, error) {
	return m.sumFn(ctx, userID, from, to)
}

type mockShiftRepo struct {
	getFn func(ctx context.Context, trainerID int64, weekday time.Weekday) (*domain.ShiftSchedule, error)
}

func (m *mockShiftRepo) GetByTrainerAndWeekday(ctx context.Context, trainerID int64, weekday time.Weekday) (*domain.ShiftSchedule, error) {
	return m.getFn(ctx, trainerID, weekday)
}

type mockTrainerRepo struct {
	getFn func(ctx context.Context, id int64) (*domain.Trainer, error)
}

func (m *mockTrainerRepo) GetByID(ctx context.Context, id int64) (*domain.Trainer, error) {
	return m.getFn(ctx, id)
}

// mockTxManager выполняет функцию без реальной транзакции
type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

var (
	testNow  = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
)

func activeTrainer() *domain.Trainer {
	return &domain.Trainer{ID: 1, Name: "Иван Петров", Specialization: "boxing", IsActive: true}
}

func standardShift() *domain.ShiftSchedule {
	return &domain.ShiftSchedule{
		TrainerID:  1,
		ShiftStart: "08:00",
		ShiftEnd:   "16:00",
		BreakStart: ptr.Ptr(types.TimeString("12:00")),
		BreakEnd:   ptr.Ptr(types.TimeString("13:00")),
		IsActive:   true,
	}
}

func validRequest() *Request {
	return &Request{
		UserID:          42,
		TrainerID:       1,
		ClassType:       "boxing",
		Date:            testDate,
		StartTime:       "09:00",
		DurationMinutes: 60,
	}
}

func defaultMocks() (*mockBookingRepo, *mockShiftRepo, *mockTrainerRepo) {
	bookingRepo := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			booking.ID = 100
			booking.CreatedAt = testNow
			booking.UpdatedAt = testNow
			return booking, nil
		},
		getActiveFn: func(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error) {
			return nil, nil
		},
		sumFn: func(ctx context.Context, userID int64, from, to time.Time) (int, error) {
			return 180, nil
		},
	}
	shiftRepo := &mockShiftRepo{getFn: func(ctx context.Context, trainerID int64, weekday time.Weekday) (*domain.ShiftSchedule, error) {
		return standardShift(), nil
	}}
	trainerRepo := &mockTrainerRepo{getFn: func(ctx context.Context, id int64) (*domain.Trainer, error) {
		return activeTrainer(), nil
	}}
	return bookingRepo, shiftRepo, trainerRepo
}

func newTestUseCase(bookingRepo *mockBookingRepo, shiftRepo *mockShiftRepo, trainerRepo *mockTrainerRepo) *UseCase {
	return NewUseCase(bookingRepo, shiftRepo, trainerRepo, &mockTxManager{}, &fixedTime{now: testNow}, &nopLogger{}, 30, 2880)
}

func TestExecute_Success(t *testing.T) {
	bookingRepo, shiftRepo, trainerRepo := defaultMocks()
	uc := newTestUseCase(bookingRepo, shiftRepo, trainerRepo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.Booking.ID)
	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
	assert.Equal(t, "Иван Петров", resp.Booking.TrainerName)
	// 180 использовано + 60 новое занятие
	assert.Equal(t, 240, resp.WeeklyUsedMinutes)
	assert.Equal(t, 2880, resp.WeeklyCapMinutes)
}

func TestExecute_WeeklyCapExceeded(t *testing.T) {
	bookingRepo, shiftRepo, trainerRepo := defaultMocks()
	bookingRepo.sumFn = func(ctx context.Context, userID int64, from, to time.Time) (int, error) {
		return 2850, nil
	}
	uc := newTestUseCase(bookingRepo, shiftRepo, trainerRepo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrWeeklyCapExceeded)
}

func TestExecute_WeeklyCapExactFitAllowed(t *testing.T) {
	// Лимит - строгое "больше": использование ровно до границы разрешено
	bookingRepo, shiftRepo, trainerRepo := defaultMocks()
	bookingRepo.sumFn = func(ctx context.Context, userID int64, from, to time.Time) (int, error) {
		return 2820, nil
	}
	uc := newTestUseCase(bookingRepo, shiftRepo, trainerRepo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 2880, resp.WeeklyUsedMinutes)
}

func TestExecute_OverrideSkipsWeeklyCap(t *testing.T) {
	bookingRepo, shiftRepo, trainerRepo := defaultMocks()
	bookingRepo.sumFn = func(ctx context.Context, userID int64, from, to time.Time) (int, error) {
		return 2850, nil
	}
	uc := newTestUseCase(bookingRepo, shiftRepo, trainerRepo)

	req := validRequest()
	req.OverrideWeeklyCap = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2910, resp.WeeklyUsedMinutes)
}

func TestExecute_SlotConflictFromOverlapCheck(t *testing.T) {
	bookingRepo, shiftRepo, trainerRepo := defaultMocks()
	bookingRepo.getActiveFn = func(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error) {
		return []*domain.Booking{
			{ID: 7, StartTime: "09:30", DurationMinutes: 60, Status: domain.StatusConfirmed},
		}, nil
	}
	bookingRepo.createFn = func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
		t.Fatal("insert must not be reached after overlap check failure")
		return nil, nil
	}
	uc := newTestUseCase(bookingRepo, shiftRepo, trainerRepo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_SlotConflictFromStorageConstraint(t *testing.T) {
	// Гонка: проверка прошла, но вставка уперлась в exclusion constraint
	bookingRepo, shiftRepo, trainerRepo := defaultMocks()
	bookingRepo.createFn = func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
		return nil, bookingstorage.ErrSlotConflict
	}
	uc := newTestUseCase(bookingRepo, shiftRepo, trainerRepo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_AdjacentBookingsDoNotConflict(t *testing.T) {
	// Занятие [08:00, 09:00) и запрос [09:00, 10:00) граничат, но не пересекаются
	bookingRepo, shiftRepo, trainerRepo := defaultMocks()
	bookingRepo.getActiveFn = func(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error) {
		return []*domain.Booking{
			{ID: 7, StartTime: "08:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
		}, nil
	}
	uc := newTestUseCase(bookingRepo, shiftRepo, trainerRepo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_OutsideShift(t *testing.T) {
	bookingRepo, shiftRepo, trainerRepo := defaultMocks()
	uc := newTestUseCase(bookingRepo, shiftRepo, trainerRepo)

	req := validRequest()
	req.StartTime = "07:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTrainerUnavailable)
}

func TestExecute_OverlapsBreak(t *testing.T) {
	bookingRepo, shiftRepo, trainerRepo := defaultMocks()
	uc := newTestUseCase(bookingRepo, shiftRepo, trainerRepo)

	req := validRequest()
	req.StartTime = "11:30"
	req.DurationMinutes = 60

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTrainerUnavailable)
}

func TestExecute_DayOff(t *testing.T) {
	bookingRepo, _, trainerRepo := defaultMocks()
	shiftRepo := &mockShiftRepo{getFn: func(ctx context.Context, trainerID int64, weekday time.Weekday) (*domain.ShiftSchedule, error) {
		return nil, shiftstorage.ErrShiftNotFound
	}}
	uc := newTestUseCase(bookingRepo, shiftRepo, trainerRepo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTrainerUnavailable)
}

func TestExecute_ClassTypeMismatch(t *testing.T) {
	bookingRepo, shiftRepo, trainerRepo := defaultMocks()
	uc := newTestUseCase(bookingRepo, shiftRepo, trainerRepo)

	req := validRequest()
	req.ClassType = "yoga"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrClassTypeMismatch)
}

func TestExecute_PastDate(t *testing.T) {
	bookingRepo, shiftRepo, trainerRepo := defaultMocks()
	uc := newTestUseCase(bookingRepo, shiftRepo, trainerRepo)

	req := validRequest()
	req.Date = time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SameDayPastStart(t *testing.T) {
	bookingRepo, shiftRepo, trainerRepo := defaultMocks()
	uc := newTestUseCase(bookingRepo, shiftRepo, trainerRepo)

	// now = 10:00, запрос на сегодня в 09:00
	req := validRequest()
	req.Date = testNow

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_IntervalValidation(t *testing.T) {
	bookingRepo, shiftRepo, trainerRepo := defaultMocks()
	uc := newTestUseCase(bookingRepo, shiftRepo, trainerRepo)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "zero duration", mutate: func(req *Request) { req.DurationMinutes = 0 }},
		{name: "negative duration", mutate: func(req *Request) { req.DurationMinutes = -30 }},
		{name: "not multiple of slot", mutate: func(req *Request) { req.DurationMinutes = 45 }},
		{name: "too long", mutate: func(req *Request) { req.DurationMinutes = 540 }},
		{name: "unaligned start", mutate: func(req *Request) { req.StartTime = "09:15" }},
		{name: "invalid start format", mutate: func(req *Request) { req.StartTime = "9am" }},
		{name: "crosses midnight", mutate: func(req *Request) { req.StartTime = "23:30"; req.DurationMinutes = 60 }},
		{name: "ends exactly at midnight", mutate: func(req *Request) { req.StartTime = "23:30"; req.DurationMinutes = 30 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInterval)
		})
	}
}
