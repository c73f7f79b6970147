package preview_block

import (
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	blockTrainer "github.com/fitbrawl/GMS-BookingService/internal/usecase/block_trainer"
	"github.com/fitbrawl/GMS-BookingService/pkg/types"
)

// BlockRequest HTTP request model предпросмотра блокировки
type BlockRequest struct {
	Date       string  `json:"date"`       // "2026-09-07"
	BlockStart string  `json:"blockStart"` // "09:00"
	BlockEnd   string  `json:"blockEnd"`   // "11:00"
	Reason     *string `json:"reason,omitempty"`
}

// AffectedBookingItem бронирование, которое затронет блокировка
type AffectedBookingItem struct {
	BookingID       int64  `json:"bookingId"`
	UserID          int64  `json:"userId"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// PreviewBlockResponse HTTP response model
type PreviewBlockResponse struct {
	TrainerID        int64                 `json:"trainerId"`
	Date             string                `json:"date"`
	AffectedBookings []AffectedBookingItem `json:"affectedBookings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BlockRequest) ToUseCaseRequest(trainerID, adminID int64) (*blockTrainer.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	blockStart, err := types.NewTimeStringFromString(r.BlockStart)
	if err != nil {
		return nil, err
	}

	blockEnd, err := types.NewTimeStringFromString(r.BlockEnd)
	if err != nil {
		return nil, err
	}

	return &blockTrainer.Request{
		TrainerID:  trainerID,
		Date:       date,
		BlockStart: blockStart,
		BlockEnd:   blockEnd,
		Reason:     r.Reason,
		BlockedBy:  adminID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *blockTrainer.Response) *PreviewBlockResponse {
	affected := make([]AffectedBookingItem, 0, len(resp.AffectedBookings))
	for _, booking := range resp.AffectedBookings {
		affected = append(affected, AffectedBookingItem{
			BookingID:       booking.BookingID,
			UserID:          booking.UserID,
			StartTime:       booking.StartTime.String(),
			EndTime:         booking.EndTime.String(),
			DurationMinutes: booking.DurationMinutes,
		})
	}

	return &PreviewBlockResponse{
		TrainerID:        resp.TrainerID,
		Date:             resp.Date.Format(domain.DateFormat),
		AffectedBookings: affected,
	}
}
