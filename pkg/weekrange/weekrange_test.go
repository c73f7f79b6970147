package weekrange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestForDate_WeekStartsOnMonday(t *testing.T) {
	tests := []struct {
		name      string
		input     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "wednesday",
			input:     date(2026, time.September, 9),
			wantStart: date(2026, time.September, 7),
			wantEnd:   date(2026, time.September, 13),
		},
		{
			name:      "monday is its own start",
			input:     date(2026, time.September, 7),
			wantStart: date(2026, time.September, 7),
			wantEnd:   date(2026, time.September, 13),
		},
		{
			// Воскресенье - последний день ISO-недели, а не первый
			name:      "sunday belongs to preceding monday",
			input:     date(2026, time.September, 13),
			wantStart: date(2026, time.September, 7),
			wantEnd:   date(2026, time.September, 13),
		},
		{
			name:      "week crossing month boundary",
			input:     date(2026, time.September, 1),
			wantStart: date(2026, time.August, 31),
			wantEnd:   date(2026, time.September, 6),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := ForDate(tt.input)
			assert.Equal(t, tt.wantStart, week.Start)
			assert.Equal(t, tt.wantEnd, week.End)
			assert.Equal(t, time.Monday, week.Start.Weekday())
			assert.Equal(t, time.Sunday, week.End.Weekday())
		})
	}
}

func TestForDate_IgnoresTimeOfDay(t *testing.T) {
	week := ForDate(time.Date(2026, time.September, 9, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, date(2026, time.September, 7), week.Start)
}

func TestContainsDate(t *testing.T) {
	week := ForDate(date(2026, time.September, 9))

	assert.True(t, week.ContainsDate(date(2026, time.September, 7)))
	assert.True(t, week.ContainsDate(date(2026, time.September, 13)))
	assert.False(t, week.ContainsDate(date(2026, time.September, 6)))
	assert.False(t, week.ContainsDate(date(2026, time.September, 14)))
}
