package domain

// Значения по умолчанию для бизнес-параметров
// Реальные значения приходят из конфигурации, эти используются как fallback
const (
	DefaultSlotDurationMinutes   = 30
	DefaultWeeklyCapMinutes      = 2880 // 48 часов
	DefaultBlockGracePeriodHours = 24
)

// Ограничения валидации
const (
	MinBookingDurationMinutes = 30
	MaxBookingDurationMinutes = 480 // 8 часов
	MaxBlockReasonLength      = 500
	MaxCancelReasonLength     = 500
)

// Форматы дат и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, при которых бронирование занимает слот тренера
// и учитывается в недельном лимите пользователя
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusPendingResolution,
}

// TerminalStatuses статусы, из которых нет переходов
var TerminalStatuses = []BookingStatus{
	StatusRescheduled,
	StatusCancelled,
	StatusCompleted,
}
