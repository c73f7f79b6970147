package create_booking

import (
	"fmt"
	"strings"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	"github.com/fitbrawl/GMS-BookingService/pkg/interval"
)

// validateRequest проверяет корректность входных данных и возвращает
// интервал занятия в минутах с начала суток
func validateRequest(req *Request, slotDuration int) (interval.Interval, error) {
	if req == nil {
		return interval.Interval{}, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return interval.Interval{}, fmt.Errorf("%w: user_id must be positive, got %d", ErrInvalidInput, req.UserID)
	}

	if req.TrainerID <= 0 {
		return interval.Interval{}, fmt.Errorf("%w: trainer_id must be positive, got %d", ErrInvalidInput, req.TrainerID)
	}

	if strings.TrimSpace(req.ClassType) == "" {
		return interval.Interval{}, fmt.Errorf("%w: class_type is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return interval.Interval{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return interval.Interval{}, fmt.Errorf("%w: invalid start_time %q", ErrInvalidInterval, string(req.StartTime))
	}

	if req.DurationMinutes < domain.MinBookingDurationMinutes || req.DurationMinutes > domain.MaxBookingDurationMinutes {
		return interval.Interval{}, fmt.Errorf("%w: duration must be between %d and %d minutes, got %d",
			ErrInvalidInterval, domain.MinBookingDurationMinutes, domain.MaxBookingDurationMinutes, req.DurationMinutes)
	}

	if req.DurationMinutes%slotDuration != 0 {
		return interval.Interval{}, fmt.Errorf("%w: duration must be a multiple of %d minutes, got %d",
			ErrInvalidInterval, slotDuration, req.DurationMinutes)
	}

	start, err := req.StartTime.Minutes()
	if err != nil {
		return interval.Interval{}, fmt.Errorf("%w: invalid start_time %q", ErrInvalidInterval, string(req.StartTime))
	}

	if start%slotDuration != 0 {
		return interval.Interval{}, fmt.Errorf("%w: start_time must be aligned to %d-minute grid",
			ErrInvalidInterval, slotDuration)
	}

	// Занятие должно закончиться строго до полуночи: "24:00" не существует
	// как время окончания
	end := start + req.DurationMinutes
	if end >= interval.MinutesPerDay {
		return interval.Interval{}, fmt.Errorf("%w: booking must end before midnight", ErrInvalidInterval)
	}

	iv, err := interval.New(start, end)
	if err != nil {
		return interval.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	return iv, nil
}
