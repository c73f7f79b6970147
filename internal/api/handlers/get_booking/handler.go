package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fitbrawl/GMS-BookingService/internal/api/handlers"
	"github.com/fitbrawl/GMS-BookingService/internal/api/middleware"
	"github.com/fitbrawl/GMS-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgAccessDenied     = "нет доступа к чужому бронированию"
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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %s", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())
	isAdmin := middleware.IsAdminFromContext(r.Context())

	view, err := h.service.GetByID(r.Context(), bookingID, userID, isAdmin)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("GET /bookings/{id} - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id} - Success: booking_id=%d, user_id=%d", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromView(view))
}
