package get_weekly_usage

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/fitbrawl/GMS-BookingService/internal/api/handlers"
	"github.com/fitbrawl/GMS-BookingService/internal/api/middleware"
	"github.com/fitbrawl/GMS-BookingService/internal/domain"
	getWeeklyUsage "github.com/fitbrawl/GMS-BookingService/internal/usecase/get_weekly_usage"
)

const (
	msgInvalidUserID  = "некорректный ID пользователя"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgAccessDenied   = "нет доступа к данным другого пользователя"
	msgInvalidRequest = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetWeeklyUsageUseCase
	logger  Logger
}

func NewHandler(useCase GetWeeklyUsageUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/weekly-usage?date=YYYY-MM-DD
// Без параметра date возвращается загрузка текущей недели
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil || userID <= 0 {
		h.logger.Warn("GET /users/{id}/weekly-usage - Invalid user ID: %s", vars["userId"])
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	authUserID, _ := middleware.UserIDFromContext(r.Context())
	if authUserID != userID && !middleware.IsAdminFromContext(r.Context()) {
		h.logger.Warn("GET /users/{id}/weekly-usage - Access denied: auth_user=%d, requested=%d", authUserID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	date := time.Now()
	if rawDate := r.URL.Query().Get("date"); rawDate != "" {
		date, err = time.Parse(domain.DateFormat, rawDate)
		if err != nil {
			h.logger.Warn("GET /users/{id}/weekly-usage - Invalid date: %s", rawDate)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getWeeklyUsage.Request{
		UserID: userID,
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getWeeklyUsage.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/weekly-usage - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /users/{id}/weekly-usage - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/weekly-usage - Success: user_id=%d, used=%d/%d",
		userID, result.UsedMinutes, result.CapMinutes)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
