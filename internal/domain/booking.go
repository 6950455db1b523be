package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed          BookingStatus = "confirmed"
	StatusCancelledByVisitor BookingStatus = "cancelled_by_visitor"
	StatusCancelledByAdmin   BookingStatus = "cancelled_by_admin"
)

// Booking represents a visitor reservation linked to an occupying event
// Интервал слота денормализован: при отмене занимающее событие удаляется,
// а бронирование остаётся в истории вместе со своим временем
type Booking struct {
	ID        int64
	EventID   *int64 // nil после отмены - событие удалено, слот освобождён
	Reference string // Код подтверждения, выдается посетителю

	SlotStartAt time.Time
	SlotEndAt   time.Time

	// Данные посетителя
	VisitorName  string
	VisitorEmail string
	VisitorPhone *string
	Notes        *string

	Status BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByVisitor || b.Status == StatusCancelledByAdmin
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	StartDate        *time.Time     // Начало периода по началу слота, включительно (опционально)
	EndDate          *time.Time     // Конец периода по началу слота, не включительно (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}
