package block_trainer

import (
	"time"

	"github.com/fitbrawl/GMS-BookingService/pkg/types"
)

// Request модель запроса на блокировку окна тренера
type Request struct {
	TrainerID  int64
	Date       time.Time
	BlockStart types.TimeString
	BlockEnd   types.TimeString
	Reason     *string // Причина блокировки, видна затронутым пользователям
	BlockedBy  int64   // ID администратора
}

// AffectedBooking бронирование, затронутое блокировкой
type AffectedBooking struct {
	BookingID       int64
	UserID          int64
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
}

// Response модель ответа preview и apply
// Для preview Applied всегда false и Deadline нулевой
type Response struct {
	TrainerID        int64
	Date             time.Time
	AffectedBookings []AffectedBooking
	Applied          bool
	Deadline         time.Time // Срок, до которого пользователи должны отреагировать
}
