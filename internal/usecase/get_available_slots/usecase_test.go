package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	shiftstorage "github.com/fitbrawl/GMS-BookingService/internal/infra/storage/shift"
	trainerstorage "github.com/fitbrawl/GMS-BookingService/internal/infra/storage/trainer"
	"github.com/fitbrawl/GMS-BookingService/pkg/ptr"
	"github.com/fitbrawl/GMS-BookingService/pkg/types"
)

type mockBookingRepo struct {
	getActiveFn func(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error)
}

func (m *mockBookingRepo) GetActiveByTrainerAndDate(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error) {
	return m.getActiveFn(ctx, trainerID, date)
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

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

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

func newTestUseCase(
	bookingRepo *mockBookingRepo,
	shiftRepo *mockShiftRepo,
	trainerRepo *mockTrainerRepo,
	now time.Time,
) *UseCase {
	return NewUseCase(bookingRepo, shiftRepo, trainerRepo, &fixedTime{now: now}, &nopLogger{}, 30)
}

func TestExecute_FullDayWithBreak(t *testing.T) {
	// Смена 08:00-16:00 с перерывом 12:00-13:00 и без бронирований:
	// 8 слотов до перерыва + 6 после = 14
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	futureDate := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&mockBookingRepo{getActiveFn: func(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error) {
			return nil, nil
		}},
		&mockShiftRepo{getFn: func(ctx context.Context, trainerID int64, weekday time.Weekday) (*domain.ShiftSchedule, error) {
			return standardShift(), nil
		}},
		&mockTrainerRepo{getFn: func(ctx context.Context, id int64) (*domain.Trainer, error) {
			return activeTrainer(), nil
		}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{TrainerID: 1, ClassType: "boxing", Date: futureDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 14)

	assert.Equal(t, "08:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "08:30", resp.Slots[0].EndTime.String())
	assert.Equal(t, "11:30", resp.Slots[7].StartTime.String())
	assert.Equal(t, "13:00", resp.Slots[8].StartTime.String())
	assert.Equal(t, "15:30", resp.Slots[13].StartTime.String())

	for _, slot := range resp.Slots {
		assert.Equal(t, 30, slot.DurationMinutes)
	}
}

func TestExecute_OccupiedSlotsExcluded(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	futureDate := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&mockBookingRepo{getActiveFn: func(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error) {
			return []*domain.Booking{
				{ID: 10, StartTime: "09:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
			}, nil
		}},
		&mockShiftRepo{getFn: func(ctx context.Context, trainerID int64, weekday time.Weekday) (*domain.ShiftSchedule, error) {
			return standardShift(), nil
		}},
		&mockTrainerRepo{getFn: func(ctx context.Context, id int64) (*domain.Trainer, error) {
			return activeTrainer(), nil
		}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{TrainerID: 1, ClassType: "boxing", Date: futureDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 12)

	for _, slot := range resp.Slots {
		assert.NotEqual(t, "09:00", slot.StartTime.String())
		assert.NotEqual(t, "09:30", slot.StartTime.String())
	}
}

func TestExecute_DayOffReturnsEmpty(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	futureDate := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&mockBookingRepo{getActiveFn: func(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error) {
			t.Fatal("bookings must not be queried on a day off")
			return nil, nil
		}},
		&mockShiftRepo{getFn: func(ctx context.Context, trainerID int64, weekday time.Weekday) (*domain.ShiftSchedule, error) {
			return nil, shiftstorage.ErrShiftNotFound
		}},
		&mockTrainerRepo{getFn: func(ctx context.Context, id int64) (*domain.Trainer, error) {
			return activeTrainer(), nil
		}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{TrainerID: 1, ClassType: "boxing", Date: futureDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ClassTypeMismatchReturnsEmpty(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	futureDate := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&mockBookingRepo{getActiveFn: func(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error) {
			return nil, nil
		}},
		&mockShiftRepo{getFn: func(ctx context.Context, trainerID int64, weekday time.Weekday) (*domain.ShiftSchedule, error) {
			return standardShift(), nil
		}},
		&mockTrainerRepo{getFn: func(ctx context.Context, id int64) (*domain.Trainer, error) {
			return activeTrainer(), nil
		}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{TrainerID: 1, ClassType: "yoga", Date: futureDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InactiveTrainerReturnsEmpty(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	futureDate := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	trainer := activeTrainer()
	trainer.IsActive = false

	uc := newTestUseCase(
		&mockBookingRepo{getActiveFn: func(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error) {
			return nil, nil
		}},
		&mockShiftRepo{getFn: func(ctx context.Context, trainerID int64, weekday time.Weekday) (*domain.ShiftSchedule, error) {
			return standardShift(), nil
		}},
		&mockTrainerRepo{getFn: func(ctx context.Context, id int64) (*domain.Trainer, error) {
			return trainer, nil
		}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{TrainerID: 1, ClassType: "boxing", Date: futureDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_TrainerNotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&mockBookingRepo{getActiveFn: func(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error) {
			return nil, nil
		}},
		&mockShiftRepo{getFn: func(ctx context.Context, trainerID int64, weekday time.Weekday) (*domain.ShiftSchedule, error) {
			return standardShift(), nil
		}},
		&mockTrainerRepo{getFn: func(ctx context.Context, id int64) (*domain.Trainer, error) {
			return nil, trainerstorage.ErrTrainerNotFound
		}},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{TrainerID: 99, ClassType: "boxing", Date: now.AddDate(0, 0, 1)})
	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestExecute_SameDayPastSlotsFiltered(t *testing.T) {
	// Запрос на сегодня в 10:15: слоты с началом до 10:15 отсекаются
	now := time.Date(2026, 9, 7, 10, 15, 0, 0, time.UTC)
	today := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&mockBookingRepo{getActiveFn: func(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error) {
			return nil, nil
		}},
		&mockShiftRepo{getFn: func(ctx context.Context, trainerID int64, weekday time.Weekday) (*domain.ShiftSchedule, error) {
			return standardShift(), nil
		}},
		&mockTrainerRepo{getFn: func(ctx context.Context, id int64) (*domain.Trainer, error) {
			return activeTrainer(), nil
		}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{TrainerID: 1, ClassType: "boxing", Date: today})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)

	assert.Equal(t, "10:30", resp.Slots[0].StartTime.String())
	// 10:30, 11:00, 11:30 до перерыва + 6 после = 9
	assert.Len(t, resp.Slots, 9)
}

func TestExecute_PastDateReturnsEmpty(t *testing.T) {
	now := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&mockBookingRepo{getActiveFn: func(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error) {
			return nil, nil
		}},
		&mockShiftRepo{getFn: func(ctx context.Context, trainerID int64, weekday time.Weekday) (*domain.ShiftSchedule, error) {
			return standardShift(), nil
		}},
		&mockTrainerRepo{getFn: func(ctx context.Context, id int64) (*domain.Trainer, error) {
			return activeTrainer(), nil
		}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{TrainerID: 1, ClassType: "boxing", Date: yesterday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(
		&mockBookingRepo{},
		&mockShiftRepo{},
		&mockTrainerRepo{},
		time.Now(),
	)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "nil request", req: nil},
		{name: "zero trainer", req: &Request{ClassType: "boxing", Date: time.Now()}},
		{name: "empty class type", req: &Request{TrainerID: 1, Date: time.Now()}},
		{name: "zero date", req: &Request{TrainerID: 1, ClassType: "boxing"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_StorageErrorWrapped(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&mockBookingRepo{getActiveFn: func(ctx context.Context, trainerID int64, date time.Time) ([]*domain.Booking, error) {
			return nil, errors.New("connection refused")
		}},
		&mockShiftRepo{getFn: func(ctx context.Context, trainerID int64, weekday time.Weekday) (*domain.ShiftSchedule, error) {
			return standardShift(), nil
		}},
		&mockTrainerRepo{getFn: func(ctx context.Context, id int64) (*domain.Trainer, error) {
			return activeTrainer(), nil
		}},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{TrainerID: 1, ClassType: "boxing", Date: now.AddDate(0, 0, 3)})
	assert.ErrorIs(t, err, ErrInternal)
}
