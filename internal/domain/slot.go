package domain

import "github.com/fitbrawl/GMS-BookingService/pkg/types"

// AvailableSlot свободный для бронирования временной слот
type AvailableSlot struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
}

// WeeklyUsage занятость пользователя за ISO-неделю
// Вычисляется по запросу из журнала бронирований, никогда не кешируется
type WeeklyUsage struct {
	UserID      int64
	UsedMinutes int
	CapMinutes  int
}

// RemainingMinutes возвращает остаток недельного лимита
func (u *WeeklyUsage) RemainingMinutes() int {
	remaining := u.CapMinutes - u.UsedMinutes
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Fits возвращает true, если занятие длительностью durationMinutes
// помещается в недельный лимит
func (u *WeeklyUsage) Fits(durationMinutes int) bool {
	return u.UsedMinutes+durationMinutes <= u.CapMinutes
}
