package get_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/d1mas/BC-SchedulingService/internal/api/handlers"
	"github.com/d1mas/BC-SchedulingService/internal/domain"
	"github.com/d1mas/BC-SchedulingService/internal/service/bookings"
	"github.com/d1mas/BC-SchedulingService/internal/service/bookings/models"
)

const (
	msgInvalidStartDate        = "некорректный формат startDate, ожидается YYYY-MM-DD"
	msgInvalidEndDate          = "некорректный формат endDate, ожидается YYYY-MM-DD"
	msgInvalidStatus           = "некорректный статус бронирования"
	msgInvalidIncludeCancelled = "некорректное значение includeCancelled"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: startDate, endDate (YYYY-MM-DD), status, includeCancelled -
// все опциональны. endDate включается в период целиком
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListBookingsRequest{}

	if dateStr := query.Get("startDate"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStartDate)
			return
		}
		req.StartDate = &date
	}

	if dateStr := query.Get("endDate"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid end date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEndDate)
			return
		}
		// Фильтр в хранилище исключает правую границу
		endExclusive := date.AddDate(0, 0, 1)
		req.EndDate = &endExclusive
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if includeStr := query.Get("includeCancelled"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid includeCancelled: %q", includeStr)
			handlers.RespondBadRequest(w, msgInvalidIncludeCancelled)
			return
		}
		req.IncludeCancelled = include
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
