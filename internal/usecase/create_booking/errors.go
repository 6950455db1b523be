package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidSlot возвращается, когда запрошенный интервал не совпадает
	// ни с одним слотом сетки на этот день
	ErrInvalidSlot = errors.New("create_booking: requested interval does not match any slot")

	// ErrDayClosed возвращается, когда на запрошенный день приём закрыт
	ErrDayClosed = errors.New("create_booking: day is closed for booking")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrTooLateToBook возвращается, когда слот начинается раньше минимального срока уведомления
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят другим событием
	ErrSlotAlreadyBooked = errors.New("create_booking: slot is already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
