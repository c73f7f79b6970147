package get_trainer_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/fitbrawl/GMS-BookingService/internal/api/handlers"
	"github.com/fitbrawl/GMS-BookingService/internal/api/middleware"
	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	"github.com/fitbrawl/GMS-BookingService/internal/service/bookings"
)

const (
	msgInvalidTrainerID = "некорректный ID тренера"
	msgInvalidPeriod    = "некорректный период, ожидается from и to в формате YYYY-MM-DD"
	msgAdminOnly        = "операция доступна только администратору"
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

// Handle GET /api/v1/trainers/{trainerId}/bookings?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdminFromContext(r.Context()) {
		h.logger.Warn("GET /trainers/{id}/bookings - Non-admin access attempt")
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	vars := mux.Vars(r)

	trainerID, err := strconv.ParseInt(vars["trainerId"], 10, 64)
	if err != nil || trainerID <= 0 {
		h.logger.Warn("GET /trainers/{id}/bookings - Invalid trainer ID: %s", vars["trainerId"])
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	from, err := time.Parse(domain.DateFormat, r.URL.Query().Get("from"))
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/bookings - Invalid from: %s", r.URL.Query().Get("from"))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	to, err := time.Parse(domain.DateFormat, r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/bookings - Invalid to: %s", r.URL.Query().Get("to"))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	views, err := h.service.GetTrainerBookings(r.Context(), &bookings.TrainerPeriodRequest{
		TrainerID: trainerID,
		From:      from,
		To:        to,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /trainers/{id}/bookings - Invalid input: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /trainers/{id}/bookings - Failed: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trainers/{id}/bookings - Success: trainer_id=%d, count=%d", trainerID, len(views))
	handlers.RespondJSON(w, http.StatusOK, FromViews(trainerID, from, to, views))
}
