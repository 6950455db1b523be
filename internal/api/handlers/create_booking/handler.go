package create_booking

import (
	"errors"
	"net/http"

	"github.com/d1mas/BC-SchedulingService/internal/api/handlers"
	createBooking "github.com/d1mas/BC-SchedulingService/internal/usecase/create_booking"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidInput      = "некорректные данные бронирования"
	msgInvalidSlot       = "запрошенный интервал не совпадает ни с одним слотом"
	msgDayClosed         = "в этот день запись закрыта"
	msgDateTooFar        = "дата выходит за горизонт бронирования"
	msgTooLateToBook     = "слишком поздно для бронирования этого слота"
	msgSlotAlreadyBooked = "слот уже занят"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Interval does not match slot grid: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createBooking.ErrDayClosed):
			h.logger.Warn("POST /bookings - Day is closed: %v", err)
			handlers.RespondBadRequest(w, msgDayClosed)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date beyond booking horizon: %v", err)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: %v", err)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Slot already booked: %v", err)
			handlers.RespondError(w, http.StatusConflict, msgSlotAlreadyBooked)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: id=%d, reference=%s",
		result.ID, result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
