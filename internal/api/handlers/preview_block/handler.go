package preview_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fitbrawl/GMS-BookingService/internal/api/handlers"
	"github.com/fitbrawl/GMS-BookingService/internal/api/middleware"
	blockTrainer "github.com/fitbrawl/GMS-BookingService/internal/usecase/block_trainer"
)

const (
	msgInvalidTrainerID   = "некорректный ID тренера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgTrainerNotFound    = "тренер не найден"
	msgInvalidInterval    = "некорректное окно блокировки"
	msgAdminOnly          = "операция доступна только администратору"
)

type Handler struct {
	useCase BlockTrainerUseCase
	logger  Logger
}

func NewHandler(useCase BlockTrainerUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/trainers/{trainerId}/block/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdminFromContext(r.Context()) {
		h.logger.Warn("POST /trainers/{id}/block/preview - Non-admin access attempt")
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	vars := mux.Vars(r)

	trainerID, err := strconv.ParseInt(vars["trainerId"], 10, 64)
	if err != nil || trainerID <= 0 {
		h.logger.Warn("POST /trainers/{id}/block/preview - Invalid trainer ID: %s", vars["trainerId"])
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	var req BlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trainers/{id}/block/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	adminID, _ := middleware.UserIDFromContext(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(trainerID, adminID)
	if err != nil {
		h.logger.Warn("POST /trainers/{id}/block/preview - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Preview(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, blockTrainer.ErrTrainerNotFound):
			h.logger.Warn("POST /trainers/{id}/block/preview - Trainer not found: trainer_id=%d", trainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, blockTrainer.ErrInvalidInterval), errors.Is(err, blockTrainer.ErrInvalidInput):
			h.logger.Warn("POST /trainers/{id}/block/preview - Invalid interval: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("POST /trainers/{id}/block/preview - Failed: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trainers/{id}/block/preview - Success: trainer_id=%d, affected=%d",
		trainerID, len(result.AffectedBookings))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
