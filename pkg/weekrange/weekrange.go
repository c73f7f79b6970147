// Package weekrange вычисляет границы ISO-недели (понедельник - воскресенье)
// для агрегации недельного лимита занятий.
package weekrange

import "time"

// Range границы недели: [Start, End] по датам (время обнулено)
type Range struct {
	Start time.Time // Понедельник 00:00
	End   time.Time // Воскресенье 00:00
}

// ForDate возвращает границы ISO-недели, содержащей указанную дату
func ForDate(date time.Time) Range {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	// time.Weekday: воскресенье = 0, понедельник = 1
	// Для ISO-недели воскресенье считается седьмым днем
	offset := int(dateOnly.Weekday()) - 1
	if offset < 0 {
		offset = 6
	}

	start := dateOnly.AddDate(0, 0, -offset)
	return Range{
		Start: start,
		End:   start.AddDate(0, 0, 6),
	}
}

// ContainsDate возвращает true, если дата попадает в неделю
func (r Range) ContainsDate(date time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return !dateOnly.Before(r.Start) && !dateOnly.After(r.End)
}
