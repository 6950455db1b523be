package save_schedule

import (
	"errors"
	"net/http"

	"github.com/d1mas/BC-SchedulingService/internal/api/handlers"
	"github.com/d1mas/BC-SchedulingService/internal/service/schedule"
	"github.com/d1mas/BC-SchedulingService/internal/service/schedule/models"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidRules = "некорректные правила расписания"
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

// Handle PUT /api/v1/admin/schedule
// Переданный набор правил полностью заменяет сохранённый
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SaveScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Save(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /admin/schedule - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRules)

		default:
			h.logger.Error("PUT /admin/schedule - Failed to save schedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/schedule - Schedule saved successfully: days=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
