package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/d1mas/BC-SchedulingService/internal/api/handlers"
	"github.com/d1mas/BC-SchedulingService/internal/domain"
	getAvailableSlots "github.com/d1mas/BC-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidStartDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDays         = "некорректное количество дней"
	msgInvalidSlotDuration = "некорректная длительность слота"
	msgInvalidBufferTime   = "некорректная длительность буфера"
	msgInvalidRequest      = "некорректные параметры запроса"
	msgStartDateInPast     = "дата начала не может быть в прошлом"
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

// Handle GET /api/v1/slots
// Query params: startDate (optional, YYYY-MM-DD, default today),
// days (optional, default 1), slotDuration и bufferTime (optional, minutes) -
// разовые переопределения настроек
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &getAvailableSlots.Request{}

	if dateStr := query.Get("startDate"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /slots - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStartDate)
			return
		}
		req.StartDate = date
	}

	if daysStr := query.Get("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days < 0 {
			h.logger.Warn("GET /slots - Invalid days: %q", daysStr)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		req.Days = days
	}

	if durationStr := query.Get("slotDuration"); durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /slots - Invalid slot duration: %q", durationStr)
			handlers.RespondBadRequest(w, msgInvalidSlotDuration)
			return
		}
		req.SlotDurationMinutes = &duration
	}

	if bufferStr := query.Get("bufferTime"); bufferStr != "" {
		buffer, err := strconv.Atoi(bufferStr)
		if err != nil {
			h.logger.Warn("GET /slots - Invalid buffer time: %q", bufferStr)
			handlers.RespondBadRequest(w, msgInvalidBufferTime)
			return
		}
		req.BufferTimeMinutes = &buffer
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /slots - Start date in the past: %v", err)
			handlers.RespondBadRequest(w, msgStartDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /slots - Failed to get slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /slots - Slots retrieved successfully: start=%s, days=%d, slots_count=%d",
		result.StartDate.Format(domain.DateFormat), result.Days, result.TotalSlots())
	handlers.RespondJSON(w, http.StatusOK, response)
}
