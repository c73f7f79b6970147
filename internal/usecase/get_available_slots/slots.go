package get_available_slots

import (
	"fmt"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	"github.com/fitbrawl/GMS-BookingService/pkg/interval"
	"github.com/fitbrawl/GMS-BookingService/pkg/types"
)

// buildSlots вычисляет доступные слоты на день.
//
// Алгоритм: окно смены минус перерыв минус занятые интервалы,
// оставшиеся свободные отрезки нарезаются на слоты фиксированной длины.
// Слот попадает в результат только если целиком лежит в свободном отрезке.
func buildSlots(
	schedule *domain.ShiftSchedule,
	occupied []*domain.Booking,
	granularity int,
	sameDay bool,
	nowMinute int,
) ([]domain.AvailableSlot, error) {
	// 1. Окно смены
	shiftIv, err := schedule.ShiftInterval()
	if err != nil {
		return nil, fmt.Errorf("invalid shift window: %v", err)
	}

	// 2. Собираем занятые интервалы: перерыв + активные бронирования
	busy := make([]interval.Interval, 0, len(occupied)+1)

	breakIv, hasBreak, err := schedule.BreakInterval()
	if err != nil {
		return nil, fmt.Errorf("invalid break window: %v", err)
	}
	if hasBreak {
		busy = append(busy, breakIv)
	}

	for _, booking := range occupied {
		iv, err := booking.Interval()
		if err != nil {
			return nil, fmt.Errorf("invalid booking interval (id=%d): %v", booking.ID, err)
		}
		busy = append(busy, iv)
	}

	// 3. Разность интервалов и нарезка на слоты
	free := interval.SubtractAll(shiftIv, busy)
	buckets := interval.SliceAll(free, granularity)

	// 4. Для текущего дня отсекаем слоты, начало которых уже в прошлом
	slots := make([]domain.AvailableSlot, 0, len(buckets))
	for _, bucket := range buckets {
		if sameDay && bucket.Start < nowMinute {
			continue
		}

		startTime, err := types.NewTimeStringFromMinutes(bucket.Start)
		if err != nil {
			return nil, err
		}
		endTime, err := types.NewTimeStringFromMinutes(bucket.End)
		if err != nil {
			return nil, err
		}

		slots = append(slots, domain.AvailableSlot{
			StartTime:       startTime,
			EndTime:         endTime,
			DurationMinutes: granularity,
		})
	}

	return slots, nil
}
