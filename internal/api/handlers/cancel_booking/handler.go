package cancel_booking

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fitbrawl/GMS-BookingService/internal/api/handlers"
	"github.com/fitbrawl/GMS-BookingService/internal/api/middleware"
	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	"github.com/fitbrawl/GMS-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "нет доступа к чужому бронированию"
	msgCannotCancel       = "бронирование нельзя отменить в текущем статусе"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %s", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())
	isAdmin := middleware.IsAdminFromContext(r.Context())

	err = h.service.Cancel(r.Context(), &bookings.CancelRequest{
		BookingID: bookingID,
		UserID:    userID,
		Reason:    req.Reason,
		IsAdmin:   isAdmin,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Cancelled: booking_id=%d, user_id=%d", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, CancelBookingResponse{
		ID:     bookingID,
		Status: string(domain.StatusCancelled),
	})
}
