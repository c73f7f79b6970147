package get_available_slots

import (
	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	getAvailableSlots "github.com/fitbrawl/GMS-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP-модель одного доступного слота
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// AvailableSlotsResponse HTTP-модель ответа со слотами
type AvailableSlotsResponse struct {
	TrainerID int64          `json:"trainerId"`
	ClassType string         `json:"classType"`
	Date      string         `json:"date"`
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       slot.StartTime.String(),
			EndTime:         slot.EndTime.String(),
			DurationMinutes: slot.DurationMinutes,
		})
	}

	return &AvailableSlotsResponse{
		TrainerID: resp.TrainerID,
		ClassType: resp.ClassType,
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     slots,
	}
}
