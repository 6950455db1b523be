package get_schedule

import (
	"net/http"

	"github.com/d1mas/BC-SchedulingService/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule
// Возвращает разрешённое недельное расписание: все 7 дней, недостающие
// заполнены дефолтами
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule - Failed to get schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule - Schedule retrieved successfully: days=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
