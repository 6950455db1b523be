package cancel_booking

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/d1mas/BC-SchedulingService/internal/api/handlers"
	"github.com/d1mas/BC-SchedulingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidInput     = "некорректные данные отмены"
	msgBookingNotFound  = "бронирование не найдено"
	msgCannotCancel     = "бронирование уже отменено"
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

// HandleByReference POST /api/v1/bookings/{reference}/cancel
// Отмена посетителем по коду подтверждения
func (h *Handler) HandleByReference(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	// Тело запроса опционально: отмена без причины - пустой запрос
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /bookings/{reference}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	err := h.service.CancelByReference(r.Context(), reference, req.ToServiceRequest())
	if err != nil {
		h.respondCancelError(w, "POST /bookings/{reference}/cancel", err)
		return
	}

	h.logger.Info("POST /bookings/{reference}/cancel - Booking cancelled successfully: reference=%s", reference)
	w.WriteHeader(http.StatusNoContent)
}

// HandleByID POST /api/v1/admin/bookings/{id}/cancel
// Отмена администратором
func (h *Handler) HandleByID(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /admin/bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.CancelByAdmin(r.Context(), id, req.ToServiceRequest()); err != nil {
		h.respondCancelError(w, "POST /admin/bookings/{id}/cancel", err)
		return
	}

	h.logger.Info("POST /admin/bookings/{id}/cancel - Booking cancelled successfully: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondCancelError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, bookings.ErrBookingNotFound):
		h.logger.Warn("%s - Booking not found: %v", route, err)
		handlers.RespondNotFound(w, msgBookingNotFound)

	case errors.Is(err, bookings.ErrCannotCancel):
		h.logger.Warn("%s - Booking cannot be cancelled: %v", route, err)
		handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

	case errors.Is(err, bookings.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Failed to cancel booking: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
