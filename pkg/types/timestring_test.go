package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "plain", input: "09:30", want: "09:30"},
		{name: "with seconds", input: "09:30:00", want: "09:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "invalid hour", input: "25:00", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	got, err := NewTimeStringFromMinutes(570)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)

	got, err = NewTimeStringFromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), got)

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestMinutes(t *testing.T) {
	minutes, err := TimeString("14:45").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 885, minutes)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestAddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	// Выход за границы суток запрещен
	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:15:00"))
	assert.Equal(t, TimeString("10:15"), ts)

	require.NoError(t, ts.Scan([]byte("11:00")))
	assert.Equal(t, TimeString("11:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 7, 8, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("08:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestValue(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	_, err = TimeString("nope").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestCompare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}
