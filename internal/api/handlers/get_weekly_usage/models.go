package get_weekly_usage

import (
	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	getWeeklyUsage "github.com/fitbrawl/GMS-BookingService/internal/usecase/get_weekly_usage"
)

// WeeklyUsageResponse HTTP-модель недельной загрузки пользователя
type WeeklyUsageResponse struct {
	UserID           int64  `json:"userId"`
	WeekStart        string `json:"weekStart"`
	WeekEnd          string `json:"weekEnd"`
	UsedMinutes      int    `json:"usedMinutes"`
	CapMinutes       int    `json:"capMinutes"`
	RemainingMinutes int    `json:"remainingMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeeklyUsage.Response) *WeeklyUsageResponse {
	return &WeeklyUsageResponse{
		UserID:           resp.UserID,
		WeekStart:        resp.WeekStart.Format(domain.DateFormat),
		WeekEnd:          resp.WeekEnd.Format(domain.DateFormat),
		UsedMinutes:      resp.UsedMinutes,
		CapMinutes:       resp.CapMinutes,
		RemainingMinutes: resp.RemainingMinutes,
	}
}
