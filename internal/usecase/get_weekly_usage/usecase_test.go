package get_weekly_usage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockBookingRepo struct {
	sumFn func(ctx context.Context, userID int64, from, to time.Time) (int, error)
}

func (m *mockBookingRepo) SumActiveMinutes(ctx context.Context, userID int64, from, to time.Time) (int, error) {
	return m.sumFn(ctx, userID, from, to)
}

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

func TestExecute_Success(t *testing.T) {
	var gotFrom, gotTo time.Time

	uc := NewUseCase(&mockBookingRepo{sumFn: func(ctx context.Context, userID int64, from, to time.Time) (int, error) {
		gotFrom, gotTo = from, to
		return 180, nil
	}}, &nopLogger{}, 2880)

	// Среда 9 сентября 2026: неделя с понедельника 7-го по воскресенье 13-е
	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 42,
		Date:   time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), gotFrom)
	assert.Equal(t, time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC), gotTo)

	assert.Equal(t, 180, resp.UsedMinutes)
	assert.Equal(t, 2880, resp.CapMinutes)
	assert.Equal(t, 2700, resp.RemainingMinutes)
	assert.Equal(t, gotFrom, resp.WeekStart)
	assert.Equal(t, gotTo, resp.WeekEnd)
}

func TestExecute_RemainingClampedToZero(t *testing.T) {
	// Загрузка выше лимита возможна после админского override
	uc := NewUseCase(&mockBookingRepo{sumFn: func(ctx context.Context, userID int64, from, to time.Time) (int, error) {
		return 3000, nil
	}}, &nopLogger{}, 2880)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, Date: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.RemainingMinutes)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, &nopLogger{}, 2880)

	_, err := uc.Execute(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StorageErrorWrapped(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{sumFn: func(ctx context.Context, userID int64, from, to time.Time) (int, error) {
		return 0, errors.New("connection refused")
	}}, &nopLogger{}, 2880)

	_, err := uc.Execute(context.Background(), &Request{UserID: 42, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInternal)
}
