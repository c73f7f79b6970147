// Package interval реализует арифметику полуоткрытых интервалов [Start, End)
// в минутах с начала суток.
//
// Все проверки пересечений в сервисе должны проходить через этот пакет,
// чтобы граничные случаи ("бронирование заканчивается ровно там, где
// начинается слот") обрабатывались одинаково во всех компонентах.
package interval

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidInterval возвращается при некорректном интервале (Start >= End или выход за сутки)
var ErrInvalidInterval = errors.New("interval: invalid interval")

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// Interval полуоткрытый интервал [Start, End) в минутах с начала суток
type Interval struct {
	Start int
	End   int
}

// New создает интервал с валидацией границ
func New(start, end int) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// Validate проверяет корректность интервала
func (i Interval) Validate() error {
	if i.Start < 0 || i.End > MinutesPerDay {
		return fmt.Errorf("%w: [%d, %d) is out of day range", ErrInvalidInterval, i.Start, i.End)
	}
	if i.Start >= i.End {
		return fmt.Errorf("%w: start %d must be before end %d", ErrInvalidInterval, i.Start, i.End)
	}
	return nil
}

// Duration возвращает длительность интервала в минутах
func (i Interval) Duration() int {
	return i.End - i.Start
}

// Overlaps возвращает true, если интервалы действительно пересекаются
// Граничащие интервалы ([09:00,10:00) и [10:00,11:00)) НЕ пересекаются
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Contains возвращает true, если other полностью лежит внутри i
func (i Interval) Contains(other Interval) bool {
	return i.Start <= other.Start && other.End <= i.End
}

// IsAlignedTo возвращает true, если обе границы интервала кратны granularity
func (i Interval) IsAlignedTo(granularity int) bool {
	if granularity <= 0 {
		return false
	}
	return i.Start%granularity == 0 && i.End%granularity == 0
}

// Subtract вычитает other из i
// Результат - ноль, один или два интервала:
//   - ноль, если other полностью покрывает i
//   - один, если other срезает край i
//   - два, если other лежит строго внутри i
//
// Если интервалы не пересекаются, i возвращается без изменений
func (i Interval) Subtract(other Interval) []Interval {
	if !i.Overlaps(other) {
		return []Interval{i}
	}

	result := make([]Interval, 0, 2)
	if i.Start < other.Start {
		result = append(result, Interval{Start: i.Start, End: other.Start})
	}
	if other.End < i.End {
		result = append(result, Interval{Start: other.End, End: i.End})
	}
	return result
}

// SubtractAll последовательно вычитает все occupied из base
// Возвращает оставшиеся свободные интервалы, отсортированные по началу
func SubtractAll(base Interval, occupied []Interval) []Interval {
	free := []Interval{base}

	for _, occ := range occupied {
		next := make([]Interval, 0, len(free)+1)
		for _, f := range free {
			next = append(next, f.Subtract(occ)...)
		}
		free = next
	}

	sort.Slice(free, func(a, b int) bool {
		return free[a].Start < free[b].Start
	})

	return free
}

// Slice нарезает интервал на окна фиксированной длительности granularity,
// начиная с i.Start. Неполное окно в конце отбрасывается
func (i Interval) Slice(granularity int) []Interval {
	if granularity <= 0 {
		return nil
	}

	slots := make([]Interval, 0, i.Duration()/granularity)
	for start := i.Start; start+granularity <= i.End; start += granularity {
		slots = append(slots, Interval{Start: start, End: start + granularity})
	}
	return slots
}

// SliceAll нарезает каждый из интервалов на окна длительности granularity
func SliceAll(intervals []Interval, granularity int) []Interval {
	slots := make([]Interval, 0)
	for _, iv := range intervals {
		slots = append(slots, iv.Slice(granularity)...)
	}
	return slots
}
