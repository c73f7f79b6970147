package get_available_slots

import (
	"time"

	"github.com/fitbrawl/GMS-BookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	TrainerID int64     // ID тренера
	ClassType string    // Тип занятия (бокс, кроссфит и т.д.)
	Date      time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
// Пустой список - не ошибка: выходной день, неподходящая специализация
// или полностью занятый день выглядят одинаково
type Response struct {
	TrainerID int64
	ClassType string
	Date      time.Time
	Slots     []domain.AvailableSlot
}
