package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fitbrawl/GMS-BookingService/internal/api/handlers"
	"github.com/fitbrawl/GMS-BookingService/internal/api/middleware"
	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	"github.com/fitbrawl/GMS-BookingService/internal/service/bookings"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgInvalidStatus = "некорректный статус бронирования"
	msgAccessDenied  = "нет доступа к бронированиям другого пользователя"
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

// Handle GET /api/v1/users/{userId}/bookings?status=confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil || userID <= 0 {
		h.logger.Warn("GET /users/{id}/bookings - Invalid user ID: %s", vars["userId"])
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	authUserID, _ := middleware.UserIDFromContext(r.Context())
	if authUserID != userID && !middleware.IsAdminFromContext(r.Context()) {
		h.logger.Warn("GET /users/{id}/bookings - Access denied: auth_user=%d, requested=%d", authUserID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var status *domain.BookingStatus
	if rawStatus := r.URL.Query().Get("status"); rawStatus != "" {
		parsed := domain.BookingStatus(rawStatus)
		if !parsed.IsValid() {
			h.logger.Warn("GET /users/{id}/bookings - Invalid status: %s", rawStatus)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		status = &parsed
	}

	views, err := h.service.GetUserBookings(r.Context(), userID, status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidUserID)

		default:
			h.logger.Error("GET /users/{id}/bookings - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/bookings - Success: user_id=%d, count=%d", userID, len(views))
	handlers.RespondJSON(w, http.StatusOK, FromViews(userID, views))
}
