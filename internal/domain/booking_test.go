package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitbrawl/GMS-BookingService/pkg/ptr"
	"github.com/fitbrawl/GMS-BookingService/pkg/types"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusConfirmed, StatusPendingResolution, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusRescheduled, false},

		{StatusPendingResolution, StatusRescheduled, true},
		{StatusPendingResolution, StatusCancelled, true},
		{StatusPendingResolution, StatusConfirmed, false},
		{StatusPendingResolution, StatusCompleted, false},

		// Терминальные статусы: никаких переходов
		{StatusRescheduled, StatusConfirmed, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusPendingResolution, false},
		{StatusCompleted, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusPendingResolution.IsTerminal())
	assert.True(t, StatusRescheduled.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
}

func TestIsValid(t *testing.T) {
	assert.True(t, StatusConfirmed.IsValid())
	assert.False(t, BookingStatus("unknown").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestBookingInterval(t *testing.T) {
	booking := &Booking{StartTime: "09:30", DurationMinutes: 60}

	iv, err := booking.Interval()
	require.NoError(t, err)
	assert.Equal(t, 570, iv.Start)
	assert.Equal(t, 630, iv.End)

	endTime, err := booking.EndTime()
	require.NoError(t, err)
	assert.Equal(t, "10:30", endTime.String())
}

func TestBookingIsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusPendingResolution}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusRescheduled}).IsActive())
}

func TestIsDeadlineExpired(t *testing.T) {
	now := time.Date(2026, 9, 8, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		status   BookingStatus
		deadline *time.Time
		want     bool
	}{
		{name: "expired", status: StatusPendingResolution, deadline: &past, want: true},
		{name: "deadline equals now", status: StatusPendingResolution, deadline: &now, want: true},
		{name: "not yet expired", status: StatusPendingResolution, deadline: &future, want: false},
		{name: "no deadline", status: StatusPendingResolution, deadline: nil, want: false},
		{name: "wrong status", status: StatusConfirmed, deadline: &past, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := &Booking{Status: tt.status, BlockDeadline: tt.deadline}
			assert.Equal(t, tt.want, booking.IsDeadlineExpired(now))
		})
	}
}

func TestShiftSchedule_Intervals(t *testing.T) {
	schedule := &ShiftSchedule{
		ShiftStart: "08:00",
		ShiftEnd:   "16:00",
		BreakStart: ptr.Ptr(types.TimeString("12:00")),
		BreakEnd:   ptr.Ptr(types.TimeString("13:00")),
	}

	shiftIv, err := schedule.ShiftInterval()
	require.NoError(t, err)
	assert.Equal(t, 480, shiftIv.Start)
	assert.Equal(t, 960, shiftIv.End)

	breakIv, hasBreak, err := schedule.BreakInterval()
	require.NoError(t, err)
	require.True(t, hasBreak)
	assert.Equal(t, 720, breakIv.Start)
	assert.Equal(t, 780, breakIv.End)
}

func TestShiftSchedule_NoBreak(t *testing.T) {
	schedule := &ShiftSchedule{ShiftStart: "07:00", ShiftEnd: "15:00"}

	_, hasBreak, err := schedule.BreakInterval()
	require.NoError(t, err)
	assert.False(t, hasBreak)
}
