package reconcile_blocks

import (
	"net/http"

	"github.com/fitbrawl/GMS-BookingService/internal/api/handlers"
	"github.com/fitbrawl/GMS-BookingService/internal/api/middleware"
)

const msgAdminOnly = "операция доступна только администратору"

// ReconcileResponse HTTP response model
type ReconcileResponse struct {
	CancelledCount int `json:"cancelledCount"`
	SkippedCount   int `json:"skippedCount"`
}

type Handler struct {
	service ReconcilerService
	logger  Logger
}

func NewHandler(service ReconcilerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/reconcile-blocks
// Ручной запуск прохода реконсилера; тот же код выполняется по таймеру
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdminFromContext(r.Context()) {
		h.logger.Warn("POST /admin/reconcile-blocks - Non-admin access attempt")
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	result, err := h.service.ReconcileExpiredBlocks(r.Context())
	if err != nil {
		h.logger.Error("POST /admin/reconcile-blocks - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/reconcile-blocks - Success: cancelled=%d, skipped=%d",
		result.CancelledCount, result.SkippedCount)
	handlers.RespondJSON(w, http.StatusOK, ReconcileResponse{
		CancelledCount: result.CancelledCount,
		SkippedCount:   result.SkippedCount,
	})
}
