package reschedule_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fitbrawl/GMS-BookingService/internal/api/handlers"
	"github.com/fitbrawl/GMS-BookingService/internal/api/middleware"
	rescheduleBooking "github.com/fitbrawl/GMS-BookingService/internal/usecase/reschedule_booking"
)

const (
	msgInvalidBookingID     = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgBookingNotFound      = "бронирование не найдено"
	msgAccessDenied         = "нет доступа к чужому бронированию"
	msgNotPendingResolution = "бронирование не ожидает переноса"
	msgDeadlineExpired      = "срок переноса бронирования истек"
	msgTrainerUnavailable   = "тренер недоступен в выбранное время"
	msgSlotConflict         = "выбранный временной слот уже занят"
	msgInvalidInterval      = "некорректный интервал занятия"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid booking ID: %s", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(userID, bookingID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, rescheduleBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, rescheduleBooking.ErrNotPendingResolution):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Not pending resolution: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotPendingResolution)

		case errors.Is(err, rescheduleBooking.ErrDeadlineExpired):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Deadline expired: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgDeadlineExpired)

		case errors.Is(err, rescheduleBooking.ErrTrainerUnavailable):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Trainer unavailable: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgTrainerUnavailable)

		case errors.Is(err, rescheduleBooking.ErrSlotConflict):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot conflict: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, rescheduleBooking.ErrInvalidInterval), errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid interval: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("PATCH /bookings/{id}/reschedule - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/reschedule - Rescheduled: old=%d, new=%d, user_id=%d",
		result.OldBookingID, result.Booking.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
