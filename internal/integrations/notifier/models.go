package notifier

import "time"

// Типы уведомлений
const (
	TypeBookingBlocked       = "BOOKING_UNAVAILABLE"
	TypeBookingAutoCancelled = "BOOKING_AUTO_CANCELLED"
)

// Notification запрос на доставку уведомления пользователю
// Транспорт доставки (email, push) - забота сервиса уведомлений
type Notification struct {
	UserID           int64      `json:"userId"`
	NotificationType string     `json:"notificationType"`
	Title            string     `json:"title"`
	Message          string     `json:"message"`
	BookingID        int64      `json:"bookingId"`
	Deadline         *time.Time `json:"deadline,omitempty"`
}
