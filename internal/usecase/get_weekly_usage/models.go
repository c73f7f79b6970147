package get_weekly_usage

import "time"

// Request модель запроса недельной загрузки пользователя
// Date - любой день интересующей недели (неделя ISO: понедельник - воскресенье)
type Request struct {
	UserID int64
	Date   time.Time
}

// Response модель ответа с недельной загрузкой
type Response struct {
	UserID           int64
	WeekStart        time.Time // Понедельник недели
	WeekEnd          time.Time // Воскресенье недели
	UsedMinutes      int
	CapMinutes       int
	RemainingMinutes int
}
