package domain

import (
	"time"

	"github.com/fitbrawl/GMS-BookingService/pkg/interval"
	"github.com/fitbrawl/GMS-BookingService/pkg/types"
)

// ShiftSchedule рабочая смена тренера на день недели
// Перерыв, если задан, полностью лежит внутри смены (инвариант
// обеспечивается админским контуром при сохранении расписания)
type ShiftSchedule struct {
	ID         int64
	TrainerID  int64
	Weekday    time.Weekday
	ShiftStart types.TimeString
	ShiftEnd   types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
	IsActive   bool
}

// ShiftInterval возвращает окно смены в минутах с начала суток
func (s *ShiftSchedule) ShiftInterval() (interval.Interval, error) {
	start, err := s.ShiftStart.Minutes()
	if err != nil {
		return interval.Interval{}, err
	}
	end, err := s.ShiftEnd.Minutes()
	if err != nil {
		return interval.Interval{}, err
	}
	return interval.New(start, end)
}

// BreakInterval возвращает окно перерыва, если он задан
// Второе значение false означает отсутствие перерыва
func (s *ShiftSchedule) BreakInterval() (interval.Interval, bool, error) {
	if s.BreakStart == nil || s.BreakEnd == nil {
		return interval.Interval{}, false, nil
	}
	start, err := s.BreakStart.Minutes()
	if err != nil {
		return interval.Interval{}, false, err
	}
	end, err := s.BreakEnd.Minutes()
	if err != nil {
		return interval.Interval{}, false, err
	}
	iv, err := interval.New(start, end)
	if err != nil {
		return interval.Interval{}, false, err
	}
	return iv, true, nil
}

// Предустановленные окна смен
// Используются админским контуром при создании расписания без кастомных часов
var (
	ShiftPresetMorning   = [2]types.TimeString{"07:00", "15:00"}
	ShiftPresetAfternoon = [2]types.TimeString{"11:00", "19:00"}
	ShiftPresetNight     = [2]types.TimeString{"15:00", "22:00"}
)

// BlockWindow окно блокировки тренера, задаваемое администратором
// Не персистится: потребляется один раз блокировщиком конфликтов
type BlockWindow struct {
	TrainerID  int64
	Date       time.Time
	BlockStart types.TimeString
	BlockEnd   types.TimeString
	Reason     *string
	BlockedBy  int64
}

// Interval возвращает окно блокировки в минутах с начала суток
func (w *BlockWindow) Interval() (interval.Interval, error) {
	start, err := w.BlockStart.Minutes()
	if err != nil {
		return interval.Interval{}, err
	}
	end, err := w.BlockEnd.Minutes()
	if err != nil {
		return interval.Interval{}, err
	}
	return interval.New(start, end)
}
