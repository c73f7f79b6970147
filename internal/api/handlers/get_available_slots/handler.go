package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/fitbrawl/GMS-BookingService/internal/api/handlers"
	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	getAvailableSlots "github.com/fitbrawl/GMS-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidTrainerID = "некорректный ID тренера"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingClassType = "не указан тип занятия"
	msgTrainerNotFound  = "тренер не найден"
	msgInvalidRequest   = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/trainers/{trainerId}/available-slots?classType=...&date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	trainerID, err := strconv.ParseInt(vars["trainerId"], 10, 64)
	if err != nil || trainerID <= 0 {
		h.logger.Warn("GET /trainers/{id}/available-slots - Invalid trainer ID: %s", vars["trainerId"])
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	classType := r.URL.Query().Get("classType")
	if classType == "" {
		h.logger.Warn("GET /trainers/{id}/available-slots - Missing classType: trainer_id=%d", trainerID)
		handlers.RespondBadRequest(w, msgMissingClassType)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/available-slots - Invalid date: %s", r.URL.Query().Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		TrainerID: trainerID,
		ClassType: classType,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTrainerNotFound):
			h.logger.Warn("GET /trainers/{id}/available-slots - Trainer not found: trainer_id=%d", trainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /trainers/{id}/available-slots - Invalid input: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /trainers/{id}/available-slots - Failed: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trainers/{id}/available-slots - Success: trainer_id=%d, date=%s, slots=%d",
		trainerID, date.Format(domain.DateFormat), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
