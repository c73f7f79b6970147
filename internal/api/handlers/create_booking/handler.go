package create_booking

import (
	"errors"
	"net/http"

	"github.com/fitbrawl/GMS-BookingService/internal/api/handlers"
	"github.com/fitbrawl/GMS-BookingService/internal/api/middleware"
	createBooking "github.com/fitbrawl/GMS-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSlotConflict       = "выбранный временной слот уже занят"
	msgTrainerNotFound    = "тренер не найден"
	msgTrainerUnavailable = "тренер недоступен в выбранное время"
	msgClassTypeMismatch  = "тренер не ведет занятия этого типа"
	msgWeeklyCapExceeded  = "превышен недельный лимит занятий"
	msgInvalidInterval    = "некорректный интервал занятия"
	msgDateInPast         = "нельзя бронировать занятие в прошлом"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())
	isAdmin := middleware.IsAdminFromContext(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(userID, isAdmin)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: user_id=%d, trainer_id=%d", userID, req.TrainerID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrWeeklyCapExceeded):
			h.logger.Warn("POST /bookings - Weekly cap exceeded: user_id=%d", userID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgWeeklyCapExceeded)

		case errors.Is(err, createBooking.ErrTrainerNotFound):
			h.logger.Warn("POST /bookings - Trainer not found: trainer_id=%d", req.TrainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, createBooking.ErrTrainerUnavailable):
			h.logger.Warn("POST /bookings - Trainer unavailable: user_id=%d, trainer_id=%d", userID, req.TrainerID)
			handlers.RespondBadRequest(w, msgTrainerUnavailable)

		case errors.Is(err, createBooking.ErrClassTypeMismatch):
			h.logger.Warn("POST /bookings - Class type mismatch: trainer_id=%d, class_type=%s", req.TrainerID, req.ClassType)
			handlers.RespondBadRequest(w, msgClassTypeMismatch)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in past: user_id=%d, date=%s", userID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidInterval), errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid interval: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, trainer_id=%d, error=%v",
				userID, req.TrainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, trainer_id=%d",
		result.Booking.ID, userID, req.TrainerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
